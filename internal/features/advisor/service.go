package advisor

import (
	"context"
	"log/slog"
	"strings"
)

type completionCaller interface {
	Complete(ctx context.Context, userQuery string) (string, error)
}

// AdvisorService answers free-text workload queries. The remote
// completion service is tried first; every remote failure is swallowed
// and logged, so the caller always gets some analysis text.
type AdvisorService struct {
	completions completionCaller
	fallback    *FallbackResponder
	logger      *slog.Logger
}

func NewAdvisorService(
	completions completionCaller,
	fallback *FallbackResponder,
	logger *slog.Logger,
) *AdvisorService {
	return &AdvisorService{
		completions: completions,
		fallback:    fallback,
		logger:      logger,
	}
}

func (s *AdvisorService) Analyze(ctx context.Context, query string) string {
	if s.completions != nil {
		answer, err := s.completions.Complete(ctx, query)
		if err == nil && strings.TrimSpace(answer) != "" {
			return answer
		}

		if err != nil {
			s.logger.Warn("remote completion failed, using fallback", "error", err)
		}
	}

	return s.fallback.Respond(query)
}
