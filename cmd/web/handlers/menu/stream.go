// Package menu drives the navigation bar's mobile menu over SSE.
package menu

import (
	"log/slog"
	"time"

	"checkershub.com/checkers/cmd/web/handlers/common"
	"checkershub.com/checkers/cmd/web/internal/visitors"
	"checkershub.com/checkers/cmd/web/templates"
	"checkershub.com/checkers/internal/metrics"
	"checkershub.com/checkers/internal/navmenu"
	"github.com/labstack/echo/v4"
	"github.com/starfederation/datastar-go/datastar"
)

// streamTransition patches the start of tr, holds the stream for its duration
// and then patches the settled phase. If another toggle superseded tr in the
// meantime nothing more is sent; the newer stream owns the menu.
func streamTransition(c echo.Context, hub *visitors.Hub, sse *datastar.ServerSentEventGenerator, tr navmenu.Transition, view templates.MenuView) error {
	metrics.MenuTransitions.WithLabelValues(tr.To.String()).Inc()

	if tr.To == navmenu.PhaseExpanding {
		// Re-rendering the menu restarts the item stagger.
		if err := sse.PatchElementTempl(templates.Menu(view), datastar.WithSelectorID("mobile-menu")); err != nil {
			slog.Error("failed to patch menu", "error", err)
			return err
		}
	}
	if err := common.PatchSignals(sse, map[string]any{
		"menuOpen":  tr.To == navmenu.PhaseExpanding,
		"menuPhase": tr.To.String(),
	}); err != nil {
		slog.Error("failed to patch menu signals", "error", err)
		return err
	}

	ctx := c.Request().Context()
	timer := time.NewTimer(tr.Duration)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil
	case <-timer.C:
	}

	var applied bool
	if err := common.WithVisitor(c, hub, func(s *visitors.State) {
		applied = s.Menu.Complete(tr.Gen)
	}); err != nil {
		slog.Warn("failed to complete menu transition", "error", err, "gen", tr.Gen)
		return nil
	}
	if !applied {
		return nil
	}

	return common.PatchSignals(sse, map[string]any{"menuPhase": tr.Settles().String()})
}
