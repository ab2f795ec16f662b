package advisor

import (
	"log/slog"
	"math/rand"
	"time"

	"allocboard/internal/config"

	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func BuildController(db *gorm.DB, cfg config.EnvVariables, logger *slog.Logger) *AdvisorController {
	var completions completionCaller
	if cfg.AIAPIURL != "" {
		completions = NewCompletionClient(cfg.AIAPIURL, cfg.AIAPIKey, cfg.AIModel)
	}

	fallback := NewFallbackResponder(rand.New(rand.NewSource(time.Now().UnixNano())))
	advisorService := NewAdvisorService(completions, fallback, logger)

	limiter := rate.NewLimiter(rate.Limit(3), 3)

	return NewAdvisorController(advisorService, NewQueryRepository(db), limiter)
}
