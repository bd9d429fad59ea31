package checker

import "strings"

const (
	MinQuantity = 1
	MaxQuantity = 100

	// DefaultQuantity is the value the quantity field starts with.
	DefaultQuantity = 1
)

// BuyOrderDraft is the in-progress state of the Buy modal.
type BuyOrderDraft struct {
	CardType CardType
	Quantity int
}

// NewBuyOrderDraft returns the draft a fresh Buy form shows.
func NewBuyOrderDraft() BuyOrderDraft {
	return BuyOrderDraft{Quantity: DefaultQuantity}
}

// QuantityOutOfRange drives the red border on the quantity input. It is a
// visual hint only and never produces a validation error by itself.
func (d BuyOrderDraft) QuantityOutOfRange() bool {
	return d.Quantity < MinQuantity || d.Quantity > MaxQuantity
}

// RetrievalRequestDraft is the in-progress state of the Retrieve modal.
type RetrievalRequestDraft struct {
	TransactionID string
	PhoneNumber   string
}

// PhoneLooksInvalid drives the red border on the phone input while typing.
// An empty field is not flagged.
func (d RetrievalRequestDraft) PhoneLooksInvalid() bool {
	return d.PhoneNumber != "" && !phonePattern.MatchString(d.PhoneNumber)
}

// normalizedTransactionID is the transaction ID as handed to the retrieval
// collaborator: surrounding whitespace trimmed, nothing else changed.
func (d RetrievalRequestDraft) normalizedTransactionID() string {
	return strings.TrimSpace(d.TransactionID)
}
