package advisor

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"allocboard/internal/util/logger"

	"github.com/stretchr/testify/assert"
)

type stubCompletions struct {
	answer string
	err    error
	calls  int
}

func (s *stubCompletions) Complete(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.answer, s.err
}

func buildAdvisorService(completions completionCaller) *AdvisorService {
	return NewAdvisorService(
		completions,
		NewFallbackResponder(rand.New(rand.NewSource(1))),
		logger.GetLogger(),
	)
}

func Test_Analyze_WhenRemoteSucceeds_RemoteAnswerReturned(t *testing.T) {
	stub := &stubCompletions{answer: "Remote analysis text"}
	service := buildAdvisorService(stub)

	answer := service.Analyze(context.Background(), "hello")

	assert.Equal(t, "Remote analysis text", answer)
	assert.Equal(t, 1, stub.calls)
}

func Test_Analyze_WhenRemoteFails_FallbackAnswerReturned(t *testing.T) {
	stub := &stubCompletions{err: errors.New("connection refused")}
	service := buildAdvisorService(stub)

	answer := service.Analyze(context.Background(), "hello")

	assert.Contains(t, CategoryResponses("hello"), answer)
}

func Test_Analyze_WhenRemoteAnswerBlank_FallbackAnswerReturned(t *testing.T) {
	stub := &stubCompletions{answer: "   \n "}
	service := buildAdvisorService(stub)

	answer := service.Analyze(context.Background(), "capacity")

	assert.Contains(t, CategoryResponses("capacity"), answer)
}

func Test_Analyze_WhenNoRemoteConfigured_FallbackAnswerReturned(t *testing.T) {
	service := buildAdvisorService(nil)

	answer := service.Analyze(context.Background(), "hello")

	assert.Contains(t, CategoryResponses("hello"), answer)
}
