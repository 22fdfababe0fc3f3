package tracker

import (
	"github.com/roach88/codelog/internal/chart"
	"github.com/roach88/codelog/internal/record"
	"github.com/roach88/codelog/internal/stats"
)

// Dashboard is everything the dashboard surface displays for one account.
type Dashboard struct {
	User       string                 `json:"user"`
	Welcome    string                 `json:"welcome"`
	Platforms  []stats.PlatformCount  `json:"platforms"`
	Questions  []record.QuestionEvent `json:"questions"`
	Growth     stats.Series           `json:"growth"`
	Chart      chart.Config           `json:"chart"`
	Summary    stats.Summary          `json:"summary"`
	Suggestion string                 `json:"suggestion"`
	// Keyword is the rule keyword that produced Suggestion, empty for the
	// default and fallback messages.
	Keyword string `json:"keyword,omitempty"`
}
