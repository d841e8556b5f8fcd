package di

import (
	"flag"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/penso/llm-mailguard/internal/config"
	"github.com/penso/llm-mailguard/internal/core"
	"github.com/penso/llm-mailguard/internal/dialog"
	"github.com/penso/llm-mailguard/internal/factory"
	"github.com/penso/llm-mailguard/internal/logging"
	"github.com/penso/llm-mailguard/internal/settings"
	"github.com/penso/llm-mailguard/internal/setup"
	"github.com/penso/llm-mailguard/internal/sysexec"
	"github.com/penso/llm-mailguard/internal/utils"
)

// CLIFlags contains all command line flags for the helper
type CLIFlags struct {
	InputFile  string
	ForceSetup bool
	Verbose    bool
	JSONLog    bool
	ConfigFile string
}

// ParseFlags parses command line flags and returns a CLIFlags struct
func ParseFlags() *CLIFlags {
	flags := &CLIFlags{}

	flag.StringVar(&flags.InputFile, "file", "", "Input email file (use stdin if not specified)")
	flag.BoolVar(&flags.ForceSetup, "setup", false, "Re-run the configuration dialogs")
	flag.BoolVar(&flags.Verbose, "verbose", false, "Enable verbose logging")
	flag.BoolVar(&flags.JSONLog, "json-log", false, "Output logs in JSON format")
	flag.StringVar(&flags.ConfigFile, "config", "", "Path to config file")

	flag.Parse()
	return flags
}

// BuildContainer creates and configures the dependency injection container
func BuildContainer(flags *CLIFlags) (*dig.Container, error) {
	container := dig.New()

	// Register flags
	if err := container.Provide(func() *CLIFlags { return flags }); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(func(flags *CLIFlags) (*zap.Logger, error) {
		return logging.InitConsoleLogger(flags.Verbose, flags.JSONLog)
	}); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(func(flags *CLIFlags, logger *zap.Logger) (*config.Config, error) {
		if flags.ConfigFile != "" {
			cfg, err := config.NewFromFile(flags.ConfigFile)
			if err != nil {
				return nil, err
			}
			logger.Info("Loaded configuration from file", zap.String("file", flags.ConfigFile))
			return cfg, nil
		}
		return config.New()
	}); err != nil {
		return nil, err
	}

	// Register command runner
	if err := container.Provide(sysexec.NewRunner); err != nil {
		return nil, err
	}

	// Register dialog presenter
	if err := container.Provide(func(runner sysexec.Runner, cfg *config.Config, logger *zap.Logger) *dialog.Presenter {
		dialogCfg := cfg.GetDialog()
		pathsCfg := cfg.GetPaths()
		return dialog.NewPresenter(runner, dialogCfg.Title, pathsCfg.Icon, logger)
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(p *dialog.Presenter) core.DialogPresenter { return p }); err != nil {
		return nil, err
	}

	// Register settings store
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) *settings.Store {
		return settings.NewStore(cfg.GetPaths().SettingsFile, logger)
	}); err != nil {
		return nil, err
	}

	// Register credential store
	if err := container.Provide(factory.NewCredentialStore); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(utils.NewTextProcessor); err != nil {
		return nil, err
	}

	// Register LLM factory
	if err := container.Provide(factory.NewLLMFactory); err != nil {
		return nil, err
	}

	// Register setup flow
	if err := container.Provide(func(
		dialogs core.DialogPresenter,
		store *settings.Store,
		creds core.CredentialStore,
		cfg *config.Config,
		logger *zap.Logger,
	) *setup.Flow {
		return setup.NewFlow(dialogs, store, creds, cfg.GetSetup(), logger)
	}); err != nil {
		return nil, err
	}

	return container, nil
}
