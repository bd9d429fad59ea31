package checker

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// User-facing validation messages.
const (
	MsgSelectCardType    = "Please select a card type."
	MsgQuantityRange     = "Quantity must be between 1 and 100."
	MsgInvalidPhone      = "Enter a valid phone number (10–15 digits)."
	MsgTransactionNeeded = "Transaction ID is required."
)

var phonePattern = regexp.MustCompile(`^[0-9]{10,15}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// The built-in numeric tag also accepts signs and decimals.
	_ = v.RegisterValidation("phonedigits", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return v
}

// ValidationError is a recoverable, user-correctable input problem.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// rule is a single field check. Rules are evaluated in order and the first
// failure wins; later rules are not evaluated.
type rule struct {
	value   any
	tag     string
	message string
}

func firstFailure(rules []rule) error {
	for _, r := range rules {
		if err := validate.Var(r.value, r.tag); err != nil {
			return &ValidationError{Message: r.message}
		}
	}
	return nil
}

// ValidateBuy checks the card type before the quantity.
func ValidateBuy(d BuyOrderDraft) error {
	return firstFailure([]rule{
		{value: string(d.CardType), tag: "required,oneof=wassce bece", message: MsgSelectCardType},
		{value: d.Quantity, tag: "min=1,max=100", message: MsgQuantityRange},
	})
}

// ValidateRetrieve checks the phone number before the transaction ID.
func ValidateRetrieve(d RetrievalRequestDraft) error {
	return firstFailure([]rule{
		{value: d.PhoneNumber, tag: "phonedigits", message: MsgInvalidPhone},
		{value: d.normalizedTransactionID(), tag: "required", message: MsgTransactionNeeded},
	})
}
