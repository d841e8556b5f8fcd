// Package dialog renders blocking native dialogs through the osascript
// scripting bridge. Every call runs one inline AppleScript to completion;
// there is no timeout, interactive dialogs may block indefinitely.
package dialog

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/penso/llm-mailguard/internal/sysexec"
)

const osascriptPath = "/usr/bin/osascript"

// Button labels of the threat choice dialog
const (
	buttonKeep       = "Keep"
	buttonMoveToJunk = "Move to Junk"
)

var escaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// Escape makes a string safe for embedding in a double-quoted AppleScript
// literal. Backslash and double quote are the only characters that can
// break out of the quoting context; leaving them unescaped is an injection
// bug, not a cosmetic one.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Presenter shows dialogs with a fixed title and application icon
type Presenter struct {
	runner   sysexec.Runner
	title    string
	iconPath string
	logger   *zap.Logger
}

// NewPresenter creates a new dialog presenter
func NewPresenter(runner sysexec.Runner, title, iconPath string, logger *zap.Logger) *Presenter {
	return &Presenter{
		runner:   runner,
		title:    title,
		iconPath: iconPath,
		logger:   logger,
	}
}

// run executes an AppleScript snippet and returns its trimmed output.
// Cancellation and execution failure both yield ok == false.
func (p *Presenter) run(ctx context.Context, script string) (string, bool) {
	out, err := p.runner.Run(ctx, osascriptPath, "-e", script)
	if err != nil {
		p.logger.Debug("Dialog returned no result", zap.Error(err))
		return "", false
	}
	return strings.TrimSpace(out), true
}

// iconClause returns the AppleScript fragment that attaches the app icon
func (p *Presenter) iconClause() (setup, with string) {
	if p.iconPath == "" {
		return "", ""
	}
	setup = fmt.Sprintf("set iconPath to POSIX file \"%s\"\n", Escape(p.iconPath))
	with = " with icon iconPath"
	return setup, with
}

// Alert shows a blocking message with a single OK button
func (p *Presenter) Alert(ctx context.Context, message string) {
	iconSetup, withIcon := p.iconClause()
	script := fmt.Sprintf(`%stell application "System Events"
	display dialog "%s" with title "%s" buttons {"OK"} default button "OK"%s
end tell`,
		iconSetup, Escape(message), Escape(p.title), withIcon)

	p.run(ctx, script)
}

// Input shows a blocking text prompt with OK and Cancel buttons.
// When hidden is true the entered text is masked.
func (p *Presenter) Input(ctx context.Context, message, defaultAnswer string, hidden bool) (string, bool) {
	hiddenClause := ""
	if hidden {
		hiddenClause = " with hidden answer"
	}

	iconSetup, withIcon := p.iconClause()
	script := fmt.Sprintf(`%stell application "System Events"
	set dialogResult to display dialog "%s" default answer "%s"%s buttons {"Cancel", "OK"} default button "OK" with title "%s"%s
	return text returned of dialogResult
end tell`,
		iconSetup, Escape(message), Escape(defaultAnswer), hiddenClause, Escape(p.title), withIcon)

	return p.run(ctx, script)
}

// ConfirmThreat asks whether a detected threat should be moved to Junk.
// It returns true only when the user clicked the move button.
func (p *Presenter) ConfirmThreat(ctx context.Context, threatLabel, reason string) bool {
	iconSetup, withIcon := p.iconClause()
	script := fmt.Sprintf(`%stell application "System Events"
	set dialogResult to display dialog "%s

Reason: %s

Move to Junk folder?" buttons {"%s", "%s"} default button "%s" with title "%s"%s
	return button returned of dialogResult
end tell`,
		iconSetup, Escape(threatLabel), Escape(reason),
		buttonKeep, buttonMoveToJunk, buttonMoveToJunk, Escape(p.title), withIcon)

	result, ok := p.run(ctx, script)
	return ok && result == buttonMoveToJunk
}
