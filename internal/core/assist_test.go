package core_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wardview/internal/core"
	"wardview/internal/llm"
	"wardview/pkg"
)

type fakeCompleter struct {
	answer string
	err    error
	calls  []string
}

func (f *fakeCompleter) Name() string { return "fake" }

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.calls = append(f.calls, prompt)
	return f.answer, f.err
}

type staticPatients []pkg.Patient

func (s staticPatients) Snapshot() []pkg.Patient { return s }

func newAssist(fake *fakeCompleter) *core.AssistService {
	return core.NewAssistService(staticPatients(testPatients()), fake, zap.NewNop())
}

func TestAnswerAggregateSkipsNetwork(t *testing.T) {
	fake := &fakeCompleter{answer: "unused"}
	svc := newAssist(fake)

	answer := svc.Answer(context.Background(), "how many diabetes patients", "")
	require.Equal(t, "There are 2 patients with diabetes.", answer)
	require.Empty(t, fake.calls)
}

func TestAnswerScopeRejectionSkipsNetwork(t *testing.T) {
	fake := &fakeCompleter{answer: "unused"}
	svc := newAssist(fake)

	answer := svc.Answer(context.Background(), "tell me a joke", "")
	require.Equal(t, "For specific patient questions, please go to the patient page.", answer)
	require.Empty(t, fake.calls)

	answer = svc.Answer(context.Background(), "latest labs please", "P1")
	require.Equal(t, "Please ask patient-specific questions in the patient page.", answer)
	require.Empty(t, fake.calls)
}

func TestAnswerAugmentedQueryReachesCompleter(t *testing.T) {
	fake := &fakeCompleter{answer: "Alex takes Metformin 500mg twice daily."}
	svc := newAssist(fake)

	answer := svc.Answer(context.Background(), "what does Alex take?", "P1")
	require.Equal(t, "Alex takes Metformin 500mg twice daily.", answer)
	require.Len(t, fake.calls, 1)
	require.Contains(t, fake.calls[0], "MRN-482913")
}

func TestAnswerUnknownPatientSendsPlainPrompt(t *testing.T) {
	fake := &fakeCompleter{answer: "General guidance."}
	svc := newAssist(fake)

	answer := svc.Answer(context.Background(), "anything about alex", "missing-id")
	require.Equal(t, "General guidance.", answer)
	require.Len(t, fake.calls, 1)
	require.NotContains(t, fake.calls[0], "Patient Information:")
}

func TestAnswerCompletionFailureIsAbsorbed(t *testing.T) {
	fake := &fakeCompleter{err: llm.ErrCompletionFailed}
	svc := newAssist(fake)

	answer := svc.Answer(context.Background(), "what does Alex take?", "P1")
	require.Equal(t, "Error: Could not process the request.", answer)
}

func TestAnswerEmptyCompletion(t *testing.T) {
	fake := &fakeCompleter{err: llm.ErrEmptyCompletion}
	svc := newAssist(fake)

	answer := svc.Answer(context.Background(), "what does Alex take?", "P1")
	require.Equal(t, "No response from AI.", answer)
}
