package panel

import (
	"checkershub.com/checkers/cmd/web/handlers/common"
	"checkershub.com/checkers/cmd/web/internal/visitors"
	"checkershub.com/checkers/internal/checker"
	"github.com/labstack/echo/v4"
	"github.com/starfederation/datastar-go/datastar"
)

// HandleOpenBuy shows the Buy modal.
func HandleOpenBuy(hub *visitors.Hub) echo.HandlerFunc {
	return handleOpen(hub, (*checker.Panel).OpenBuy)
}

// HandleOpenRetrieve shows the Retrieve modal.
func HandleOpenRetrieve(hub *visitors.Hub) echo.HandlerFunc {
	return handleOpen(hub, (*checker.Panel).OpenRetrieve)
}

func handleOpen(hub *visitors.Hub, open func(*checker.Panel)) echo.HandlerFunc {
	return func(c echo.Context) error {
		var modal checker.Modal
		if err := common.WithVisitor(c, hub, func(s *visitors.State) {
			open(s.Panel)
			modal = s.Panel.Modal()
		}); err != nil {
			return err
		}

		common.SetSSEHeaders(c)
		sse := datastar.NewSSE(c.Response().Writer, c.Request())
		return common.PatchSignals(sse, map[string]any{"modal": modal.String()})
	}
}
