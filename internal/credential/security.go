// Package credential stores the API key in an OS-level secure store.
// Two backends are provided: the macOS security(1) utility and a
// cross-platform keyring for other hosts.
package credential

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/penso/llm-mailguard/internal/sysexec"
)

// SecurityCLI stores the secret as a generic keychain password through the
// macOS security command-line utility.
type SecurityCLI struct {
	runner       sysexec.Runner
	securityPath string
	service      string
	account      string
	logger       *zap.Logger
}

// NewSecurityCLI creates a credential store backed by security(1)
func NewSecurityCLI(runner sysexec.Runner, securityPath, service, account string, logger *zap.Logger) *SecurityCLI {
	return &SecurityCLI{
		runner:       runner,
		securityPath: securityPath,
		service:      service,
		account:      account,
		logger:       logger,
	}
}

// Get looks up the stored secret. Any failure (not found, tool missing,
// non-zero exit) surfaces as absence.
func (s *SecurityCLI) Get(ctx context.Context) (string, bool) {
	out, err := s.runner.Run(ctx, s.securityPath,
		"find-generic-password",
		"-a", s.account,
		"-s", s.service,
		"-w")
	if err != nil {
		s.logger.Debug("No keychain entry", zap.String("service", s.service), zap.Error(err))
		return "", false
	}

	return strings.TrimSpace(out), true
}

// Set replaces the stored secret. Deletion of a previous entry is
// best-effort; only the insert decides success.
func (s *SecurityCLI) Set(ctx context.Context, secret string) bool {
	_, _ = s.runner.Run(ctx, s.securityPath,
		"delete-generic-password",
		"-a", s.account,
		"-s", s.service)

	_, err := s.runner.Run(ctx, s.securityPath,
		"add-generic-password",
		"-a", s.account,
		"-s", s.service,
		"-w", secret,
		"-U")
	if err != nil {
		s.logger.Error("Failed to store API key in keychain",
			zap.String("service", s.service),
			zap.Error(err))
		return false
	}

	return true
}
