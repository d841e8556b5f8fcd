package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/penso/llm-mailguard/internal/actions"
	"github.com/penso/llm-mailguard/internal/core"
	"github.com/penso/llm-mailguard/internal/di"
	"github.com/penso/llm-mailguard/internal/factory"
	"github.com/penso/llm-mailguard/internal/message"
	"github.com/penso/llm-mailguard/internal/settings"
	"github.com/penso/llm-mailguard/internal/setup"
)

func main() {
	flags := di.ParseFlags()

	container, err := di.BuildContainer(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build container: %v\n", err)
		os.Exit(1)
	}

	if err := container.Invoke(run); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to run: %v\n", err)
		os.Exit(1)
	}
}

// run drives one invocation: configure if needed, scan the message on
// stdin, ask about detected threats, and print the action envelope. The
// envelope is always emitted so the host never waits on missing output.
func run(
	flags *di.CLIFlags,
	logger *zap.Logger,
	store *settings.Store,
	creds core.CredentialStore,
	dialogs core.DialogPresenter,
	flow *setup.Flow,
	llmFactory *factory.LLMFactory,
) error {
	defer logger.Sync()
	ctx := context.Background()

	s, configured := store.Load()
	if !configured || flags.ForceSetup {
		var ok bool
		s, ok = flow.Run(ctx)
		if !ok {
			logger.Warn("Setup not completed, nothing to do")
			return actions.Emit(os.Stdout, nil)
		}
	}

	apiKey, hasKey := creds.Get(ctx)
	if !hasKey {
		logger.Debug("No API key in credential store, calling unauthenticated")
	}

	raw, err := readInput(flags.InputFile)
	if err != nil {
		logger.Error("Failed to read message", zap.Error(err))
		return actions.Emit(os.Stdout, nil)
	}

	content := message.Extract(raw)

	llmClient := llmFactory.CreateLLMClient(s, apiKey)
	service := core.NewGuardService(llmClient, dialogs, s.GetString(settings.KeyModel), logger)

	result, err := service.ScanEmail(ctx, content)
	if err != nil {
		logScanError(logger, err)
		return actions.Emit(os.Stdout, nil)
	}

	return actions.Emit(os.Stdout, service.ResolveActions(ctx, result))
}

// readInput reads the raw message from the given file, or stdin when empty
func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}

// logScanError distinguishes the two failure tiers of the API client
func logScanError(logger *zap.Logger, err error) {
	var apiErr *core.APIError
	if errors.As(err, &apiErr) {
		logger.Error("Classification request rejected",
			zap.Int("status", apiErr.StatusCode),
			zap.String("body", apiErr.Body))
		return
	}

	var connErr *core.ConnectionError
	if errors.As(err, &connErr) {
		logger.Error("Could not reach classification endpoint", zap.Error(connErr.Err))
		return
	}

	logger.Error("Failed to classify message", zap.Error(err))
}
