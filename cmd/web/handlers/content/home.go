package content

import (
	"time"

	"checkershub.com/checkers/cmd/web/handlers/common"
	"checkershub.com/checkers/cmd/web/internal/visitors"
	"checkershub.com/checkers/cmd/web/templates"
	"checkershub.com/checkers/internal/checker"
	"github.com/labstack/echo/v4"
)

// HandleHomePage renders the landing page. A page load is a fresh mount, so
// the visitor's panel and menu start over.
func HandleHomePage(hub *visitors.Hub, footer templates.FooterView) echo.HandlerFunc {
	return handlePage(hub, footer, checker.ModalClosed)
}

// HandleBuyPage renders the landing page with the Buy modal open.
func HandleBuyPage(hub *visitors.Hub, footer templates.FooterView) echo.HandlerFunc {
	return handlePage(hub, footer, checker.ModalBuy)
}

// HandleRetrievePage renders the landing page with the Retrieve modal open.
func HandleRetrievePage(hub *visitors.Hub, footer templates.FooterView) echo.HandlerFunc {
	return handlePage(hub, footer, checker.ModalRetrieve)
}

func handlePage(hub *visitors.Hub, footer templates.FooterView, modal checker.Modal) echo.HandlerFunc {
	return func(c echo.Context) error {
		var view templates.PageView
		err := common.ResetVisitor(c, hub, func(s *visitors.State) {
			switch modal {
			case checker.ModalBuy:
				s.Panel.OpenBuy()
			case checker.ModalRetrieve:
				s.Panel.OpenRetrieve()
			}
			view = templates.PageView{
				Panel:  templates.NewPanelView(s.Panel),
				Menu:   templates.NewMenuView(s.Menu),
				Footer: footer,
			}
		})
		if err != nil {
			return err
		}

		if view.Footer.Year == 0 {
			view.Footer.Year = time.Now().Year()
		}

		return templates.Index(view).Render(c.Request().Context(), c.Response())
	}
}
