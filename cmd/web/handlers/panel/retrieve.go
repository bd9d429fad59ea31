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

// HandleRetrieveSubmit validates the Retrieve draft and, when it holds,
// submits the retrieval request, closes the modal and shows the
// acknowledgement.
func HandleRetrieveSubmit(hub *visitors.Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		signals := &panelSignals{}
		if err := datastar.ReadSignals(c.Request(), signals); err != nil {
			return common.ErrBadRequest("invalid signals")
		}
		draft := signals.retrieveDraft()

		var (
			outcome checker.Outcome
			err     error
		)
		if herr := common.WithVisitor(c, hub, func(s *visitors.State) {
			outcome, err = s.Panel.SubmitRetrieve(c.Request().Context(), draft)
		}); herr != nil {
			return herr
		}

		common.SetSSEHeaders(c)
		sse := datastar.NewSSE(c.Response().Writer, c.Request())

		if err != nil {
			slog.Info("retrieve rejected", "error", err)
			patchFormResult(sse, templates.RetrieveErrorID, "retrieveError", checker.UserMessage(err))
			return nil
		}

		slog.Info("retrieve accepted", "reference", outcome.Receipt.Reference)
		patchFormResult(sse, templates.RetrieveErrorID, "retrieveError", "")
		patchAccepted(sse, outcome.Confirmation)
		return nil
	}
}
