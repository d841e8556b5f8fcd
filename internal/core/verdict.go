package core

import (
	"strings"
)

// ParseVerdict interprets the free-text reply from the model.
// The expected shape is a single line "CATEGORY" or "CATEGORY: reason";
// anything else maps to UNKNOWN with the full reply as the reason.
func ParseVerdict(reply string) Verdict {
	trimmed := strings.TrimSpace(reply)
	if trimmed == "" {
		return Verdict{Category: CategoryUnknown}
	}

	firstLine := trimmed
	if idx := strings.IndexByte(firstLine, '\n'); idx >= 0 {
		firstLine = strings.TrimSpace(firstLine[:idx])
	}

	label := firstLine
	reason := ""
	if idx := strings.IndexByte(firstLine, ':'); idx >= 0 {
		label = strings.TrimSpace(firstLine[:idx])
		reason = strings.TrimSpace(firstLine[idx+1:])
	}

	switch Category(strings.ToUpper(label)) {
	case CategorySafe:
		return Verdict{Category: CategorySafe, Reason: reason}
	case CategoryPhishing:
		return Verdict{Category: CategoryPhishing, Reason: reason}
	case CategorySpam:
		return Verdict{Category: CategorySpam, Reason: reason}
	case CategoryScam:
		return Verdict{Category: CategoryScam, Reason: reason}
	case CategorySuspicious:
		return Verdict{Category: CategorySuspicious, Reason: reason}
	}

	return Verdict{Category: CategoryUnknown, Reason: trimmed}
}
