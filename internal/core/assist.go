package core

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"wardview/internal/llm"
	"wardview/pkg"
)

// PatientSource provides the read-only patient snapshot consulted during
// classification. The store owns the mutable collection; the assist service
// only ever reads a copy.
type PatientSource interface {
	Snapshot() []pkg.Patient
}

// AssistService routes dashboard questions: aggregate statistics and scope
// rejections are answered locally, everything else goes to the completion
// client. All completion failures are absorbed into display strings here, so
// the HTTP layer never handles an error from this subsystem.
type AssistService struct {
	patients PatientSource
	client   llm.Client
	logger   *zap.Logger
}

// NewAssistService constructs the assist service.
func NewAssistService(patients PatientSource, client llm.Client, logger *zap.Logger) *AssistService {
	return &AssistService{patients: patients, client: client, logger: logger}
}

// Answer resolves a question to a chat display string. patientID is empty in
// general chat mode.
func (s *AssistService) Answer(ctx context.Context, question, patientID string) string {
	c := Classify(question, patientID, s.patients.Snapshot(), time.Now())

	switch c.Kind {
	case KindAggregateAnswer, KindScopeRejection:
		return c.Text
	case KindPlainQuery:
		if patientID != "" {
			// A patient page asked about an id missing from the snapshot.
			s.logger.Warn("patient not found, answering without context",
				zap.String("patient_id", patientID))
		}
	}

	answer, err := s.client.Complete(ctx, c.Text)
	if err != nil {
		if errors.Is(err, llm.ErrEmptyCompletion) {
			s.logger.Warn("completion returned no answer text",
				zap.String("provider", s.client.Name()))
			return NoResponseMessage
		}
		s.logger.Error("completion failed",
			zap.String("provider", s.client.Name()),
			zap.Error(err))
		return CompletionErrorMessage
	}
	return answer
}
