package menu

import (
	"errors"
	"log/slog"
	"net/url"
	"strconv"

	"checkershub.com/checkers/cmd/web/handlers/common"
	"checkershub.com/checkers/cmd/web/internal/visitors"
	"checkershub.com/checkers/cmd/web/templates"
	"checkershub.com/checkers/internal/navmenu"
	"github.com/labstack/echo/v4"
	"github.com/starfederation/datastar-go/datastar"
)

// HandleSelect closes the menu and navigates to the chosen destination once
// the collapse has played.
func HandleSelect(hub *visitors.Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		key, err := url.PathUnescape(c.Param("item"))
		if err != nil {
			return common.ErrBadRequest("invalid menu item")
		}

		var (
			item    navmenu.Item
			tr      navmenu.Transition
			started bool
			view    templates.MenuView
			selErr  error
		)
		if err := common.WithVisitor(c, hub, func(s *visitors.State) {
			item, tr, started, selErr = s.Menu.Select(key)
			view = templates.NewMenuView(s.Menu)
		}); err != nil {
			return err
		}
		if errors.Is(selErr, navmenu.ErrUnknownItem) {
			return common.ErrNotFound("unknown menu item")
		}

		common.SetSSEHeaders(c)
		sse := datastar.NewSSE(c.Response().Writer, c.Request())

		if started {
			if err := streamTransition(c, hub, sse, tr, view); err != nil {
				return err
			}
			if c.Request().Context().Err() != nil {
				return nil
			}
		}

		if err := sse.ExecuteScript("window.location.href = " + strconv.Quote(item.Href) + ";"); err != nil {
			slog.Error("failed to send navigation", "error", err, "href", item.Href)
			return err
		}
		return nil
	}
}
