package sweeper

import (
	"context"
	"time"

	"github.com/fsi-tue/rri/internal/clock"
	"github.com/fsi-tue/rri/internal/models"
	"github.com/fsi-tue/rri/utils"
)

// ArticleSweeper is the subset of the article system the sweep job needs
type ArticleSweeper interface {
	SweepExpired(now time.Time) ([]models.Article, error)
}

// Sweeper periodically transitions expired articles
type Sweeper struct {
	system   ArticleSweeper
	clk      clock.Clock
	interval time.Duration
}

func New(system ArticleSweeper, clk clock.Clock, interval time.Duration) *Sweeper {
	return &Sweeper{system: system, clk: clk, interval: interval}
}

// Run blocks, sweeping once per interval until ctx is done. One sweep runs
// immediately on start so a restart does not delay overdue transitions.
func (s *Sweeper) Run(ctx context.Context) {
	s.sweepOnce()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			utils.Info("sweeper stopped", nil)
			return
		case <-ticker.C:
			s.sweepOnce()
		}
	}
}

func (s *Sweeper) sweepOnce() {
	expired, err := s.system.SweepExpired(s.clk.Now())
	if err != nil {
		utils.Error("expiry sweep failed", map[string]any{"error": err.Error()})
		return
	}
	if len(expired) > 0 {
		utils.Info("expiry sweep transitioned articles", map[string]any{"count": len(expired)})
	}
}
