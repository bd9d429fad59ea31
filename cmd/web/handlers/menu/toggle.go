package menu

import (
	"checkershub.com/checkers/cmd/web/handlers/common"
	"checkershub.com/checkers/cmd/web/internal/visitors"
	"checkershub.com/checkers/cmd/web/templates"
	"checkershub.com/checkers/internal/navmenu"
	"github.com/labstack/echo/v4"
	"github.com/starfederation/datastar-go/datastar"
)

// HandleToggle opens or closes the mobile menu.
func HandleToggle(hub *visitors.Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		var (
			tr   navmenu.Transition
			view templates.MenuView
		)
		if err := common.WithVisitor(c, hub, func(s *visitors.State) {
			tr = s.Menu.Toggle()
			view = templates.NewMenuView(s.Menu)
		}); err != nil {
			return err
		}

		common.SetSSEHeaders(c)
		sse := datastar.NewSSE(c.Response().Writer, c.Request())
		return streamTransition(c, hub, sse, tr, view)
	}
}
