package common

import (
	"encoding/json"

	"github.com/labstack/echo/v4"
	"github.com/starfederation/datastar-go/datastar"
)

// SetSSEHeaders sets headers needed for SSE that datastar.NewSSE() does NOT set.
// datastar already sets Content-Type, Cache-Control, and Connection.
// This only adds X-Accel-Buffering for nginx/reverse proxy compatibility.
func SetSSEHeaders(c echo.Context) {
	c.Response().Header().Set("X-Accel-Buffering", "no")
}

// PatchSignals marshals signals and patches them into the page.
func PatchSignals(sse *datastar.ServerSentEventGenerator, signals map[string]any) error {
	b, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return sse.PatchSignals(b)
}
