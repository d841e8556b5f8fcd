package setup

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/penso/llm-mailguard/internal/config"
	"github.com/penso/llm-mailguard/internal/settings"
)

var testDefaults = config.SetupConfig{
	DefaultProvider: "OpenAI",
	DefaultEndpoint: "https://api.openai.com/v1/chat/completions",
	DefaultModel:    "gpt-5.2",
}

// scriptedDialogs answers Input calls in order; a nil entry cancels
type scriptedDialogs struct {
	answers  []*string
	defaults []string
	alerts   []string
}

func answer(s string) *string { return &s }

func (d *scriptedDialogs) Alert(_ context.Context, message string) {
	d.alerts = append(d.alerts, message)
}

func (d *scriptedDialogs) Input(_ context.Context, _, defaultAnswer string, _ bool) (string, bool) {
	d.defaults = append(d.defaults, defaultAnswer)
	if len(d.answers) == 0 {
		return "", false
	}
	next := d.answers[0]
	d.answers = d.answers[1:]
	if next == nil {
		return "", false
	}
	return *next, true
}

func (d *scriptedDialogs) ConfirmThreat(context.Context, string, string) bool { return false }

type memStore struct {
	saved settings.Settings
	err   error
}

func (m *memStore) Save(s settings.Settings) error {
	if m.err != nil {
		return m.err
	}
	m.saved = s
	return nil
}

type memCreds struct {
	secret string
	set    bool
	fail   bool
}

func (m *memCreds) Get(context.Context) (string, bool) { return m.secret, m.secret != "" }

func (m *memCreds) Set(_ context.Context, secret string) bool {
	if m.fail {
		return false
	}
	m.secret = secret
	m.set = true
	return true
}

func TestRunSavesSettingsAndKey(t *testing.T) {
	dialogs := &scriptedDialogs{answers: []*string{
		answer("OpenAI"),
		answer("http://localhost:11434/v1/chat/completions"),
		answer("llama3"),
		answer("sk-test"),
	}}
	store := &memStore{}
	creds := &memCreds{}

	flow := NewFlow(dialogs, store, creds, testDefaults, zap.NewNop())
	s, ok := flow.Run(context.Background())
	require.True(t, ok)

	assert.Equal(t, settings.Settings{
		settings.KeyProvider: "OpenAI",
		settings.KeyEndpoint: "http://localhost:11434/v1/chat/completions",
		settings.KeyModel:    "llama3",
	}, s)
	assert.Equal(t, s, store.saved)
	assert.Equal(t, "sk-test", creds.secret)

	// Prompts offer the configured defaults
	assert.Equal(t, []string{
		"OpenAI",
		"https://api.openai.com/v1/chat/completions",
		"gpt-5.2",
		"",
	}, dialogs.defaults)
}

func TestRunCancelledPromptAborts(t *testing.T) {
	dialogs := &scriptedDialogs{answers: []*string{
		answer("OpenAI"),
		nil, // endpoint prompt cancelled
	}}
	store := &memStore{}
	creds := &memCreds{}

	flow := NewFlow(dialogs, store, creds, testDefaults, zap.NewNop())
	s, ok := flow.Run(context.Background())

	assert.False(t, ok)
	assert.Nil(t, s)
	assert.Nil(t, store.saved)
	assert.False(t, creds.set)
}

func TestRunEmptyKeySkipsCredentialStore(t *testing.T) {
	dialogs := &scriptedDialogs{answers: []*string{
		answer("Local"),
		answer("http://localhost:11434/v1/chat/completions"),
		answer("llama3"),
		answer(""),
	}}
	store := &memStore{}
	creds := &memCreds{}

	flow := NewFlow(dialogs, store, creds, testDefaults, zap.NewNop())
	_, ok := flow.Run(context.Background())

	require.True(t, ok)
	assert.False(t, creds.set)
	assert.NotNil(t, store.saved)
}

func TestRunKeychainFailureStillCompletes(t *testing.T) {
	dialogs := &scriptedDialogs{answers: []*string{
		answer("OpenAI"),
		answer("https://api.openai.com/v1/chat/completions"),
		answer("gpt-5.2"),
		answer("sk-test"),
	}}
	store := &memStore{}
	creds := &memCreds{fail: true}

	flow := NewFlow(dialogs, store, creds, testDefaults, zap.NewNop())
	_, ok := flow.Run(context.Background())

	require.True(t, ok)
	require.Len(t, dialogs.alerts, 1)
	assert.Contains(t, dialogs.alerts[0], "API key")
}

func TestRunSaveFailureAborts(t *testing.T) {
	dialogs := &scriptedDialogs{answers: []*string{
		answer("OpenAI"),
		answer("https://api.openai.com/v1/chat/completions"),
		answer("gpt-5.2"),
		answer("sk-test"),
	}}
	store := &memStore{err: assert.AnError}
	creds := &memCreds{}

	flow := NewFlow(dialogs, store, creds, testDefaults, zap.NewNop())
	s, ok := flow.Run(context.Background())

	assert.False(t, ok)
	assert.Nil(t, s)
	assert.False(t, creds.set)
	require.Len(t, dialogs.alerts, 1)
	assert.Contains(t, dialogs.alerts[0], "configuration")
}
