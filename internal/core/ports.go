package core

import (
	"context"
)

// LLMClient defines the interface for the chat-completion service.
// ok is false when the call succeeded but carried no usable answer;
// err covers transport and HTTP-level failures only.
type LLMClient interface {
	Classify(ctx context.Context, systemPrompt, emailContent string) (reply string, ok bool, err error)
}

// DialogPresenter defines the interface for blocking native dialogs.
// A false result means the dialog was cancelled or could not be shown;
// the two are deliberately not distinguished.
type DialogPresenter interface {
	// Alert shows a message with a single OK button
	Alert(ctx context.Context, message string)

	// Input prompts for a line of text, optionally masked
	Input(ctx context.Context, message, defaultAnswer string, hidden bool) (string, bool)

	// ConfirmThreat asks whether a detected threat should be moved to Junk
	ConfirmThreat(ctx context.Context, threatLabel, reason string) bool
}

// CredentialStore defines the interface for the OS-level secret store.
// Failures surface as absence, never as errors.
type CredentialStore interface {
	// Get retrieves the stored API key
	Get(ctx context.Context) (string, bool)

	// Set stores the API key, replacing any existing entry
	Set(ctx context.Context, secret string) bool
}
