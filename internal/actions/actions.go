// Package actions implements the JSON envelope printed on stdout for the
// host mail client. The envelope is the sole output contract: one object,
// one "actions" field, emitted once per invocation.
package actions

import (
	"encoding/json"
	"fmt"
	"io"
)

// Mailbox action types understood by the host
const (
	TypeMoveMessage = "moveMessage"

	MailboxJunk = "junk"
)

// Action represents one mailbox operation requested from the host
type Action struct {
	Type        string `json:"type"`
	MailboxType string `json:"mailboxType,omitempty"`
}

// MoveToJunk returns the action that moves the current message to Junk
func MoveToJunk() Action {
	return Action{Type: TypeMoveMessage, MailboxType: MailboxJunk}
}

type envelope struct {
	Actions []Action `json:"actions"`
}

// Emit writes the action envelope to w as a single JSON line.
// A nil or empty list serializes as an empty array, never null.
func Emit(w io.Writer, acts []Action) error {
	if acts == nil {
		acts = []Action{}
	}

	data, err := json.Marshal(envelope{Actions: acts})
	if err != nil {
		return fmt.Errorf("failed to encode actions: %w", err)
	}

	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("failed to write actions: %w", err)
	}

	return nil
}
