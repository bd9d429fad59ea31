package common

import (
	"errors"
	"net/http"

	"checkershub.com/checkers/cmd/web/ctxkeys"
	"checkershub.com/checkers/cmd/web/internal/visitors"
	"github.com/labstack/echo/v4"
)

// RequireVisitorID returns the visitor ID set by the visitor middleware.
func RequireVisitorID(c echo.Context) (string, error) {
	id, _ := c.Get(ctxkeys.EchoVisitorID).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "no visitor session")
	}
	return id, nil
}

// WithVisitor runs fn on the current visitor's state. A full hub maps to 503.
func WithVisitor(c echo.Context, hub *visitors.Hub, fn func(*visitors.State)) error {
	id, err := RequireVisitorID(c)
	if err != nil {
		return err
	}
	if err := hub.With(id, fn); err != nil {
		return hubError(err)
	}
	return nil
}

// ResetVisitor starts the current visitor over, as on a fresh page load.
func ResetVisitor(c echo.Context, hub *visitors.Hub, fn func(*visitors.State)) error {
	id, err := RequireVisitorID(c)
	if err != nil {
		return err
	}
	if err := hub.Reset(id, fn); err != nil {
		return hubError(err)
	}
	return nil
}

func hubError(err error) error {
	if errors.Is(err, visitors.ErrHubFull) {
		return ErrUnavailable("too many visitors, please try again shortly")
	}
	return ErrInternal(err.Error())
}
