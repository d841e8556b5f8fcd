package credential

import (
	"context"
	"fmt"

	"github.com/99designs/keyring"
	"go.uber.org/zap"
)

// Keyring stores the secret through the cross-platform keyring library,
// for hosts where the security utility is unavailable.
type Keyring struct {
	account string
	open    func() (keyring.Keyring, error)
	logger  *zap.Logger
}

// NewKeyring creates a credential store backed by the OS keyring
func NewKeyring(service, account, fileDir string, logger *zap.Logger) *Keyring {
	return &Keyring{
		account: account,
		open: func() (keyring.Keyring, error) {
			ring, err := keyring.Open(keyring.Config{
				ServiceName: service,
				AllowedBackends: []keyring.BackendType{
					keyring.KeychainBackend,
					keyring.SecretServiceBackend,
					keyring.WinCredBackend,
					keyring.PassBackend,
					keyring.FileBackend,
				},
				FileDir:                  fileDir,
				FilePasswordFunc:         keyring.FixedStringPrompt(service),
				KeychainTrustApplication: true,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to open keyring: %w", err)
			}
			return ring, nil
		},
		logger: logger,
	}
}

// Get looks up the stored secret; any failure surfaces as absence
func (k *Keyring) Get(_ context.Context) (string, bool) {
	ring, err := k.open()
	if err != nil {
		k.logger.Debug("Keyring unavailable", zap.Error(err))
		return "", false
	}

	item, err := ring.Get(k.account)
	if err != nil {
		k.logger.Debug("No keyring entry", zap.String("account", k.account), zap.Error(err))
		return "", false
	}

	return string(item.Data), true
}

// Set replaces the stored secret; removal of a previous entry is best-effort
func (k *Keyring) Set(_ context.Context, secret string) bool {
	ring, err := k.open()
	if err != nil {
		k.logger.Error("Keyring unavailable", zap.Error(err))
		return false
	}

	_ = ring.Remove(k.account)

	if err := ring.Set(keyring.Item{Key: k.account, Data: []byte(secret)}); err != nil {
		k.logger.Error("Failed to store API key in keyring",
			zap.String("account", k.account),
			zap.Error(err))
		return false
	}

	return true
}
