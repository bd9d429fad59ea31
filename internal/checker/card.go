// Package checker holds the result checker card domain: card types, the buy and
// retrieve drafts, their validation rules and the ActionPanel that mediates the
// two modal forms.
package checker

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CardType identifies the examination a checker card unlocks.
type CardType string

const (
	CardUnset  CardType = ""
	CardWASSCE CardType = "wassce"
	CardBECE   CardType = "bece"
)

// CardTypes lists the purchasable card types in display order.
var CardTypes = []CardType{CardWASSCE, CardBECE}

var upper = cases.Upper(language.Und)

// ParseCardType maps a form value onto a CardType. Unknown values are unset.
func ParseCardType(raw string) CardType {
	switch CardType(strings.ToLower(strings.TrimSpace(raw))) {
	case CardWASSCE:
		return CardWASSCE
	case CardBECE:
		return CardBECE
	default:
		return CardUnset
	}
}

// IsSet reports whether a card type has been chosen.
func (t CardType) IsSet() bool {
	return t == CardWASSCE || t == CardBECE
}

// Upper returns the upper-cased label shown to the user, e.g. "WASSCE".
func (t CardType) Upper() string {
	return upper.String(string(t))
}
