package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/penso/llm-mailguard/internal/actions"
)

type fakeLLM struct {
	reply  string
	ok     bool
	err    error
	system string
	input  string
}

func (f *fakeLLM) Classify(_ context.Context, systemPrompt, emailContent string) (string, bool, error) {
	f.system = systemPrompt
	f.input = emailContent
	return f.reply, f.ok, f.err
}

type fakeDialogs struct {
	confirm       bool
	confirmCalled bool
	threatLabel   string
	threatReason  string
}

func (f *fakeDialogs) Alert(context.Context, string) {}

func (f *fakeDialogs) Input(context.Context, string, string, bool) (string, bool) {
	return "", false
}

func (f *fakeDialogs) ConfirmThreat(_ context.Context, label, reason string) bool {
	f.confirmCalled = true
	f.threatLabel = label
	f.threatReason = reason
	return f.confirm
}

func TestScanEmailClassifies(t *testing.T) {
	llm := &fakeLLM{reply: "PHISHING: spoofed sender", ok: true}
	svc := NewGuardService(llm, &fakeDialogs{}, "gpt-5.2", zap.NewNop())

	result, err := svc.ScanEmail(context.Background(), "From: a@b\n\nbody")
	require.NoError(t, err)

	assert.Equal(t, CategoryPhishing, result.Verdict.Category)
	assert.Equal(t, "spoofed sender", result.Verdict.Reason)
	assert.Equal(t, "gpt-5.2", result.ModelUsed)
	assert.NotEmpty(t, result.ProcessingID)
	assert.Equal(t, ClassificationPrompt, llm.system)
	assert.Equal(t, "From: a@b\n\nbody", llm.input)
}

func TestScanEmailNoUsableAnswer(t *testing.T) {
	llm := &fakeLLM{ok: false}
	svc := NewGuardService(llm, &fakeDialogs{}, "gpt-5.2", zap.NewNop())

	result, err := svc.ScanEmail(context.Background(), "body")
	require.NoError(t, err)
	assert.Equal(t, CategoryUnknown, result.Verdict.Category)
}

func TestScanEmailPropagatesAPIError(t *testing.T) {
	llm := &fakeLLM{err: &APIError{StatusCode: 429, Body: "rate limited"}}
	svc := NewGuardService(llm, &fakeDialogs{}, "gpt-5.2", zap.NewNop())

	result, err := svc.ScanEmail(context.Background(), "body")
	assert.Nil(t, result)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 429, apiErr.StatusCode)
	assert.Equal(t, "rate limited", apiErr.Body)
}

func TestResolveActionsThreatConfirmed(t *testing.T) {
	dialogs := &fakeDialogs{confirm: true}
	svc := NewGuardService(&fakeLLM{}, dialogs, "gpt-5.2", zap.NewNop())

	result := &ScanResult{Verdict: Verdict{Category: CategoryPhishing, Reason: "spoofed sender"}}
	acts := svc.ResolveActions(context.Background(), result)

	require.Len(t, acts, 1)
	assert.Equal(t, actions.MoveToJunk(), acts[0])
	assert.True(t, dialogs.confirmCalled)
	assert.Equal(t, "Phishing attempt detected", dialogs.threatLabel)
	assert.Equal(t, "spoofed sender", dialogs.threatReason)
}

func TestResolveActionsThreatDeclined(t *testing.T) {
	// A cancelled or failed dialog also lands here
	dialogs := &fakeDialogs{confirm: false}
	svc := NewGuardService(&fakeLLM{}, dialogs, "gpt-5.2", zap.NewNop())

	result := &ScanResult{Verdict: Verdict{Category: CategorySpam}}
	assert.Empty(t, svc.ResolveActions(context.Background(), result))
	assert.True(t, dialogs.confirmCalled)
}

func TestResolveActionsSafeSkipsDialog(t *testing.T) {
	dialogs := &fakeDialogs{confirm: true}
	svc := NewGuardService(&fakeLLM{}, dialogs, "gpt-5.2", zap.NewNop())

	assert.Empty(t, svc.ResolveActions(context.Background(), &ScanResult{Verdict: Verdict{Category: CategorySafe}}))
	assert.Empty(t, svc.ResolveActions(context.Background(), &ScanResult{Verdict: Verdict{Category: CategoryUnknown}}))
	assert.Empty(t, svc.ResolveActions(context.Background(), nil))
	assert.False(t, dialogs.confirmCalled)
}
