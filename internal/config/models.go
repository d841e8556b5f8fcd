package config

// PathsConfig represents the filesystem locations used by the helper
type PathsConfig struct {
	SettingsFile string
	Icon         string
}

// KeychainConfig represents the identifiers of the stored API credential
type KeychainConfig struct {
	Service string
	Account string
}

// CredentialConfig represents the configuration for the credential store backend
type CredentialConfig struct {
	Backend      string
	SecurityPath string
	FileDir      string
}

// DialogConfig represents the configuration for native dialogs
type DialogConfig struct {
	Title string
}

// SetupConfig represents the defaults offered during first-run setup
type SetupConfig struct {
	DefaultProvider string
	DefaultEndpoint string
	DefaultModel    string
}

// GetPaths returns the filesystem path configuration
func (c *Config) GetPaths() PathsConfig {
	return PathsConfig{
		SettingsFile: c.GetString("paths.settings_file"),
		Icon:         c.GetString("paths.icon"),
	}
}

// GetKeychain returns the keychain identifier configuration
func (c *Config) GetKeychain() KeychainConfig {
	return KeychainConfig{
		Service: c.GetString("keychain.service"),
		Account: c.GetString("keychain.account"),
	}
}

// GetCredential returns the credential store configuration
func (c *Config) GetCredential() CredentialConfig {
	return CredentialConfig{
		Backend:      c.GetString("credential.backend"),
		SecurityPath: c.GetString("credential.security_path"),
		FileDir:      c.GetString("credential.file_dir"),
	}
}

// GetDialog returns the dialog configuration
func (c *Config) GetDialog() DialogConfig {
	return DialogConfig{
		Title: c.GetString("dialog.title"),
	}
}

// GetSetup returns the first-run setup defaults
func (c *Config) GetSetup() SetupConfig {
	return SetupConfig{
		DefaultProvider: c.GetString("setup.default_provider"),
		DefaultEndpoint: c.GetString("setup.default_endpoint"),
		DefaultModel:    c.GetString("setup.default_model"),
	}
}
