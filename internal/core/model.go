package core

import (
	"time"
)

// Category classifies the model's verdict on a message
type Category string

const (
	CategorySafe       Category = "SAFE"
	CategoryPhishing   Category = "PHISHING"
	CategorySpam       Category = "SPAM"
	CategoryScam       Category = "SCAM"
	CategorySuspicious Category = "SUSPICIOUS"
	CategoryUnknown    Category = "UNKNOWN"
)

// Verdict represents the interpreted classification of a message
type Verdict struct {
	Category Category
	Reason   string
}

// IsThreat reports whether the verdict calls for threat handling
func (v Verdict) IsThreat() bool {
	switch v.Category {
	case CategoryPhishing, CategorySpam, CategoryScam, CategorySuspicious:
		return true
	}
	return false
}

// ThreatLabel returns the human-readable headline shown in the threat dialog
func (v Verdict) ThreatLabel() string {
	switch v.Category {
	case CategoryPhishing:
		return "Phishing attempt detected"
	case CategorySpam:
		return "Spam detected"
	case CategoryScam:
		return "Scam attempt detected"
	case CategorySuspicious:
		return "Suspicious message detected"
	default:
		return "Threat detected"
	}
}

// ScanResult represents the result of scanning one message
type ScanResult struct {
	Verdict      Verdict
	Reply        string
	ScannedAt    time.Time
	ModelUsed    string
	ProcessingID string
}
