package checker

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	"checkershub.com/checkers/internal/metrics"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

// BuyOrder is an accepted Buy draft handed to the order desk.
type BuyOrder struct {
	CardType CardType
	Quantity int
}

// RetrievalRequest is an accepted Retrieve draft handed to the order desk.
type RetrievalRequest struct {
	TransactionID string
	PhoneNumber   string
}

// Receipt acknowledges a request accepted by the order desk.
type Receipt struct {
	Reference string
}

// Fulfillment is the boundary to whatever actually issues and looks up cards.
// Validation happens before either method is called.
type Fulfillment interface {
	PlaceOrder(ctx context.Context, order BuyOrder) (Receipt, error)
	RetrieveOrder(ctx context.Context, req RetrievalRequest) (Receipt, error)
}

// SubmissionError wraps a Fulfillment failure. Unlike ValidationError it is not
// the user's fault, but the draft is kept so they can resubmit.
type SubmissionError struct {
	Op      string
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// LocalDesk acknowledges requests in-process. Nothing is stored or sent.
type LocalDesk struct {
	newReference func() string
}

// NewLocalDesk returns a desk that issues random references.
func NewLocalDesk() *LocalDesk {
	return &LocalDesk{newReference: func() string { return uuid.NewString() }}
}

func (d *LocalDesk) PlaceOrder(ctx context.Context, order BuyOrder) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	ref := d.newReference()
	metrics.CardsOrdered.WithLabelValues(string(order.CardType)).Add(float64(order.Quantity))
	slog.Info("order acknowledged",
		"reference", ref,
		"card_type", order.CardType.Upper(),
		"quantity", order.Quantity,
	)
	return Receipt{Reference: ref}, nil
}

func (d *LocalDesk) RetrieveOrder(ctx context.Context, req RetrievalRequest) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	ref := d.newReference()
	slog.Info("retrieval acknowledged", "reference", ref, "transaction_id", logText(req.TransactionID))
	return Receipt{Reference: ref}, nil
}

var stripTags = bluemonday.StrictPolicy()

// logText strips markup from free text for log fields only.
func logText(s string) string {
	return html.UnescapeString(stripTags.Sanitize(s))
}
