// Package setup implements the first-run configuration flow: a short
// sequence of dialogs that collects the provider, endpoint, model and API
// key, then persists them.
package setup

import (
	"context"

	"go.uber.org/zap"

	"github.com/penso/llm-mailguard/internal/config"
	"github.com/penso/llm-mailguard/internal/core"
	"github.com/penso/llm-mailguard/internal/settings"
)

// SettingsStore is the slice of the settings store the flow needs
type SettingsStore interface {
	Save(settings.Settings) error
}

// Flow runs the interactive setup sequence
type Flow struct {
	dialogs  core.DialogPresenter
	store    SettingsStore
	creds    core.CredentialStore
	defaults config.SetupConfig
	logger   *zap.Logger
}

// NewFlow creates a new setup flow
func NewFlow(
	dialogs core.DialogPresenter,
	store SettingsStore,
	creds core.CredentialStore,
	defaults config.SetupConfig,
	logger *zap.Logger,
) *Flow {
	return &Flow{
		dialogs:  dialogs,
		store:    store,
		creds:    creds,
		defaults: defaults,
		logger:   logger,
	}
}

// Run walks the user through setup. Any cancelled prompt aborts the flow
// and reports false; nothing is persisted in that case. An empty API key is
// accepted (local models need none).
func (f *Flow) Run(ctx context.Context) (settings.Settings, bool) {
	provider, ok := f.dialogs.Input(ctx, "LLM provider name:", f.defaults.DefaultProvider, false)
	if !ok {
		return nil, false
	}

	endpoint, ok := f.dialogs.Input(ctx, "Chat completions endpoint URL:", f.defaults.DefaultEndpoint, false)
	if !ok {
		return nil, false
	}

	model, ok := f.dialogs.Input(ctx, "Model name:", f.defaults.DefaultModel, false)
	if !ok {
		return nil, false
	}

	apiKey, ok := f.dialogs.Input(ctx, "API key (leave empty for local models):", "", true)
	if !ok {
		return nil, false
	}

	s := settings.Settings{
		settings.KeyProvider: provider,
		settings.KeyEndpoint: endpoint,
		settings.KeyModel:    model,
	}

	if err := f.store.Save(s); err != nil {
		f.logger.Error("Failed to save settings", zap.Error(err))
		f.dialogs.Alert(ctx, "Could not save the configuration file.")
		return nil, false
	}

	if apiKey != "" {
		if !f.creds.Set(ctx, apiKey) {
			// Settings are saved either way; the key can be re-entered later
			f.dialogs.Alert(ctx, "Could not save the API key to the keychain.")
		}
	}

	f.logger.Info("Setup completed",
		zap.String("provider", provider),
		zap.String("model", model))

	return s, true
}
