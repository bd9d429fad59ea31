package checker

import (
	"context"
	"errors"
	"fmt"

	"checkershub.com/checkers/internal/metrics"
	"github.com/dustin/go-humanize/english"
)

// Modal is the dialog currently shown by the panel. Only one can be open.
type Modal int

const (
	ModalClosed Modal = iota
	ModalBuy
	ModalRetrieve
)

func (m Modal) String() string {
	switch m {
	case ModalBuy:
		return "buy"
	case ModalRetrieve:
		return "retrieve"
	default:
		return "closed"
	}
}

const (
	msgOrderFailed     = "We could not place your order. Please try again."
	msgRetrievalFailed = "We could not submit your retrieval request. Please try again."
)

// Outcome is the result of an accepted submission.
type Outcome struct {
	Confirmation string
	Receipt      Receipt
}

// Panel is the buy/retrieve action panel: which modal is open, the two drafts
// and the last error of each form. It is not safe for concurrent use.
type Panel struct {
	desk Fulfillment

	modal    Modal
	buy      BuyOrderDraft
	retrieve RetrievalRequestDraft

	buyErr      string
	retrieveErr string
}

// NewPanel returns a closed panel with fresh drafts.
func NewPanel(desk Fulfillment) *Panel {
	return &Panel{
		desk: desk,
		buy:  NewBuyOrderDraft(),
	}
}

func (p *Panel) Modal() Modal                         { return p.modal }
func (p *Panel) BuyDraft() BuyOrderDraft              { return p.buy }
func (p *Panel) RetrieveDraft() RetrievalRequestDraft { return p.retrieve }
func (p *Panel) BuyError() string                     { return p.buyErr }
func (p *Panel) RetrieveError() string                { return p.retrieveErr }

func (p *Panel) OpenBuy()      { p.modal = ModalBuy }
func (p *Panel) OpenRetrieve() { p.modal = ModalRetrieve }

// CloseModal hides whichever modal is open. Drafts and errors are kept, so
// reopening shows the previous values.
func (p *Panel) CloseModal() { p.modal = ModalClosed }

// UpdateBuyDraft records form control changes without validating them.
func (p *Panel) UpdateBuyDraft(d BuyOrderDraft) { p.buy = d }

// UpdateRetrieveDraft records form control changes without validating them.
func (p *Panel) UpdateRetrieveDraft(d RetrievalRequestDraft) { p.retrieve = d }

// SubmitBuy validates the draft and, if it holds, places the order and closes
// the modal. A *ValidationError or *SubmissionError is returned otherwise and
// the modal stays as it was.
func (p *Panel) SubmitBuy(ctx context.Context, d BuyOrderDraft) (Outcome, error) {
	p.buy = d

	if err := ValidateBuy(d); err != nil {
		p.buyErr = err.Error()
		metrics.Submissions.WithLabelValues("buy", metrics.OutcomeInvalid).Inc()
		return Outcome{}, err
	}

	order := BuyOrder{CardType: d.CardType, Quantity: d.Quantity}
	receipt, err := p.desk.PlaceOrder(ctx, order)
	if err != nil {
		p.buyErr = msgOrderFailed
		metrics.Submissions.WithLabelValues("buy", metrics.OutcomeFailed).Inc()
		return Outcome{}, &SubmissionError{Op: "place order", Message: msgOrderFailed, Err: err}
	}

	p.buyErr = ""
	p.modal = ModalClosed
	metrics.Submissions.WithLabelValues("buy", metrics.OutcomeAccepted).Inc()
	return Outcome{Confirmation: OrderConfirmation(order), Receipt: receipt}, nil
}

// SubmitRetrieve validates the draft and, if it holds, submits the retrieval
// request and closes the modal.
func (p *Panel) SubmitRetrieve(ctx context.Context, d RetrievalRequestDraft) (Outcome, error) {
	p.retrieve = d

	if err := ValidateRetrieve(d); err != nil {
		p.retrieveErr = err.Error()
		metrics.Submissions.WithLabelValues("retrieve", metrics.OutcomeInvalid).Inc()
		return Outcome{}, err
	}

	req := RetrievalRequest{TransactionID: d.normalizedTransactionID(), PhoneNumber: d.PhoneNumber}
	receipt, err := p.desk.RetrieveOrder(ctx, req)
	if err != nil {
		p.retrieveErr = msgRetrievalFailed
		metrics.Submissions.WithLabelValues("retrieve", metrics.OutcomeFailed).Inc()
		return Outcome{}, &SubmissionError{Op: "retrieve order", Message: msgRetrievalFailed, Err: err}
	}

	p.retrieveErr = ""
	p.modal = ModalClosed
	metrics.Submissions.WithLabelValues("retrieve", metrics.OutcomeAccepted).Inc()
	return Outcome{Confirmation: RetrievalConfirmation(req), Receipt: receipt}, nil
}

// OrderConfirmation is the acknowledgement shown after a Buy submit,
// e.g. "Order placed: 5 x WASSCE cards".
func OrderConfirmation(o BuyOrder) string {
	return fmt.Sprintf("Order placed: %d x %s %s", o.Quantity, o.CardType.Upper(), english.PluralWord(o.Quantity, "card", ""))
}

// RetrievalConfirmation is the acknowledgement shown after a Retrieve submit.
func RetrievalConfirmation(r RetrievalRequest) string {
	return "Retrieval request submitted for Transaction ID: " + r.TransactionID
}

// UserMessage returns the text to show for an error returned by a submit.
func UserMessage(err error) string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	var serr *SubmissionError
	if errors.As(err, &serr) {
		return serr.Message
	}
	return err.Error()
}
