package panel

import (
	"log/slog"

	"checkershub.com/checkers/cmd/web/handlers/common"
	"checkershub.com/checkers/cmd/web/internal/visitors"
	"checkershub.com/checkers/cmd/web/templates"
	"checkershub.com/checkers/internal/checker"
	"github.com/labstack/echo/v4"
	"github.com/starfederation/datastar-go/datastar"
)

// HandleBuySubmit validates the Buy draft and, when it holds, places the order,
// closes the modal and shows the acknowledgement.
func HandleBuySubmit(hub *visitors.Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		signals := &panelSignals{}
		if err := datastar.ReadSignals(c.Request(), signals); err != nil {
			return common.ErrBadRequest("invalid signals")
		}
		draft := signals.buyDraft()

		var (
			outcome checker.Outcome
			err     error
		)
		if herr := common.WithVisitor(c, hub, func(s *visitors.State) {
			outcome, err = s.Panel.SubmitBuy(c.Request().Context(), draft)
		}); herr != nil {
			return herr
		}

		common.SetSSEHeaders(c)
		sse := datastar.NewSSE(c.Response().Writer, c.Request())

		if err != nil {
			slog.Info("buy rejected", "error", err, "card_type", draft.CardType, "quantity", draft.Quantity)
			patchFormResult(sse, templates.BuyErrorID, "buyError", checker.UserMessage(err))
			return nil
		}

		slog.Info("buy accepted", "reference", outcome.Receipt.Reference)
		patchFormResult(sse, templates.BuyErrorID, "buyError", "")
		patchAccepted(sse, outcome.Confirmation)
		return nil
	}
}
