// Package panel handles the buy/retrieve action panel and its two modals.
package panel

import (
	"log/slog"
	"math"
	"strconv"
	"strings"

	"checkershub.com/checkers/cmd/web/handlers/common"
	"checkershub.com/checkers/cmd/web/templates"
	"checkershub.com/checkers/internal/checker"
	"github.com/starfederation/datastar-go/datastar"
)

// panelSignals are the Datastar signals bound to the modal form controls.
type panelSignals struct {
	CardType      string `json:"cardType"`
	Quantity      any    `json:"quantity"`
	PhoneNumber   string `json:"phoneNumber"`
	TransactionID string `json:"transactionId"`
}

func (s *panelSignals) buyDraft() checker.BuyOrderDraft {
	return checker.BuyOrderDraft{
		CardType: checker.ParseCardType(s.CardType),
		Quantity: parseQuantity(s.Quantity),
	}
}

func (s *panelSignals) retrieveDraft() checker.RetrievalRequestDraft {
	return checker.RetrievalRequestDraft{
		TransactionID: s.TransactionID,
		PhoneNumber:   s.PhoneNumber,
	}
}

// parseQuantity accepts the number a bound number input sends, or the string
// an emptied or edited one can send. Anything unusable becomes 0, which fails
// the range check.
func parseQuantity(v any) int {
	switch q := v.(type) {
	case float64:
		if q != math.Trunc(q) || q > math.MaxInt32 || q < math.MinInt32 {
			return 0
		}
		return int(q)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(q))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// patchFormResult patches the form's error line and the matching signal.
func patchFormResult(sse *datastar.ServerSentEventGenerator, errorID, errorSignal, message string) {
	if err := sse.PatchElementTempl(
		templates.FormError(errorID, message),
		datastar.WithSelectorID(errorID),
	); err != nil {
		slog.Warn("failed to patch form error", "error", err, "id", errorID)
	}
	if err := common.PatchSignals(sse, map[string]any{errorSignal: message}); err != nil {
		slog.Warn("failed to patch signals", "error", err)
	}
}

// patchAccepted closes the modal and shows the acknowledgement toast.
func patchAccepted(sse *datastar.ServerSentEventGenerator, confirmation string) {
	if err := sse.PatchElementTempl(
		templates.Toast(confirmation),
		datastar.WithSelectorID("toast"),
	); err != nil {
		slog.Warn("failed to patch toast", "error", err)
	}
	if err := common.PatchSignals(sse, map[string]any{
		"modal": checker.ModalClosed.String(),
		"toast": confirmation,
	}); err != nil {
		slog.Warn("failed to patch signals", "error", err)
	}
}
