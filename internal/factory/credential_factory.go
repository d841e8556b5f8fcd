package factory

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/penso/llm-mailguard/internal/config"
	"github.com/penso/llm-mailguard/internal/core"
	"github.com/penso/llm-mailguard/internal/credential"
	"github.com/penso/llm-mailguard/internal/sysexec"
)

// NewCredentialStore creates the credential store selected by configuration
func NewCredentialStore(cfg *config.Config, runner sysexec.Runner, logger *zap.Logger) (core.CredentialStore, error) {
	credCfg := cfg.GetCredential()
	keychainCfg := cfg.GetKeychain()

	switch credCfg.Backend {
	case "security":
		return credential.NewSecurityCLI(
			runner,
			credCfg.SecurityPath,
			keychainCfg.Service,
			keychainCfg.Account,
			logger,
		), nil
	case "keyring":
		return credential.NewKeyring(
			keychainCfg.Service,
			keychainCfg.Account,
			credCfg.FileDir,
			logger,
		), nil
	default:
		return nil, fmt.Errorf("unsupported credential backend: %s", credCfg.Backend)
	}
}
