package panel

import (
	"log/slog"

	"checkershub.com/checkers/cmd/web/handlers/common"
	"checkershub.com/checkers/cmd/web/internal/visitors"
	"checkershub.com/checkers/internal/checker"
	"github.com/labstack/echo/v4"
	"github.com/starfederation/datastar-go/datastar"
)

// HandleClose hides whichever modal is open (cancel button, backdrop, Escape).
// The form values the browser holds are recorded so the drafts survive.
func HandleClose(hub *visitors.Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		// IMPORTANT: ReadSignals MUST happen BEFORE NewSSE.
		// NewSSE flushes response headers which closes the request body.
		signals := &panelSignals{}
		if err := datastar.ReadSignals(c.Request(), signals); err != nil {
			slog.Warn("failed to read close signals", "error", err)
			signals = nil
		}

		if err := common.WithVisitor(c, hub, func(s *visitors.State) {
			if signals != nil {
				switch s.Panel.Modal() {
				case checker.ModalBuy:
					s.Panel.UpdateBuyDraft(signals.buyDraft())
				case checker.ModalRetrieve:
					s.Panel.UpdateRetrieveDraft(signals.retrieveDraft())
				}
			}
			s.Panel.CloseModal()
		}); err != nil {
			return err
		}

		common.SetSSEHeaders(c)
		sse := datastar.NewSSE(c.Response().Writer, c.Request())
		return common.PatchSignals(sse, map[string]any{"modal": checker.ModalClosed.String()})
	}
}
