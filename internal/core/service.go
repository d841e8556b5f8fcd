package core

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/penso/llm-mailguard/internal/actions"
)

// ClassificationPrompt is the system prompt sent with every scan
const ClassificationPrompt = `You are an email security assistant. Analyze the email you are given and decide whether it is a threat.

Reply with exactly one line in one of these forms:
SAFE
PHISHING: <short reason>
SPAM: <short reason>
SCAM: <short reason>
SUSPICIOUS: <short reason>

Do not add any other text.`

// GuardService scans messages and decides which mailbox actions to request
type GuardService struct {
	llmClient LLMClient
	dialogs   DialogPresenter
	modelName string
	logger    *zap.Logger
}

// NewGuardService creates a new guard service
func NewGuardService(
	llmClient LLMClient,
	dialogs DialogPresenter,
	modelName string,
	logger *zap.Logger,
) *GuardService {
	return &GuardService{
		llmClient: llmClient,
		dialogs:   dialogs,
		modelName: modelName,
		logger:    logger,
	}
}

// ScanEmail classifies one message. Transport and HTTP failures are returned
// as typed errors; a well-formed response without usable content yields an
// UNKNOWN verdict and no error.
func (s *GuardService) ScanEmail(ctx context.Context, content string) (*ScanResult, error) {
	result := &ScanResult{
		ScannedAt:    time.Now(),
		ModelUsed:    s.modelName,
		ProcessingID: uuid.NewString(),
	}

	reply, ok, err := s.llmClient.Classify(ctx, ClassificationPrompt, content)
	if err != nil {
		return nil, err
	}

	if !ok {
		s.logger.Warn("No usable answer from model",
			zap.String("model", s.modelName),
			zap.String("processing_id", result.ProcessingID))
		result.Verdict = Verdict{Category: CategoryUnknown}
		return result, nil
	}

	result.Reply = reply
	result.Verdict = ParseVerdict(reply)

	s.logger.Info("Message classified",
		zap.String("category", string(result.Verdict.Category)),
		zap.String("model", s.modelName),
		zap.String("processing_id", result.ProcessingID))

	return result, nil
}

// ResolveActions turns a scan result into the action list for the host.
// Threat verdicts require the user's confirmation; a cancelled or failed
// dialog keeps the message where it is.
func (s *GuardService) ResolveActions(ctx context.Context, result *ScanResult) []actions.Action {
	if result == nil || !result.Verdict.IsThreat() {
		return nil
	}

	if !s.dialogs.ConfirmThreat(ctx, result.Verdict.ThreatLabel(), result.Verdict.Reason) {
		s.logger.Info("User kept flagged message",
			zap.String("category", string(result.Verdict.Category)),
			zap.String("processing_id", result.ProcessingID))
		return nil
	}

	s.logger.Info("Moving flagged message to junk",
		zap.String("category", string(result.Verdict.Category)),
		zap.String("processing_id", result.ProcessingID))

	return []actions.Action{actions.MoveToJunk()}
}
