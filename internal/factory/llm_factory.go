package factory

import (
	"go.uber.org/zap"

	"github.com/penso/llm-mailguard/internal/adapters/openai"
	"github.com/penso/llm-mailguard/internal/config"
	"github.com/penso/llm-mailguard/internal/core"
	"github.com/penso/llm-mailguard/internal/settings"
	"github.com/penso/llm-mailguard/internal/utils"
)

// LLMFactory creates chat-completion clients from saved settings
type LLMFactory struct {
	cfg           *config.Config
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewLLMFactory creates a new LLM factory
func NewLLMFactory(cfg *config.Config, logger *zap.Logger, textProcessor *utils.TextProcessor) *LLMFactory {
	return &LLMFactory{
		cfg:           cfg,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// CreateLLMClient builds a client for the configured endpoint and model.
// All providers speak the OpenAI-compatible wire format; the provider name
// stored in the settings is informational. Missing settings fall back to
// the setup defaults.
func (f *LLMFactory) CreateLLMClient(s settings.Settings, apiKey string) core.LLMClient {
	defaults := f.cfg.GetSetup()

	endpoint := s.GetString(settings.KeyEndpoint)
	if endpoint == "" {
		endpoint = defaults.DefaultEndpoint
	}

	model := s.GetString(settings.KeyModel)
	if model == "" {
		model = defaults.DefaultModel
	}

	return openai.NewClient(endpoint, model, apiKey, f.textProcessor, f.logger)
}
