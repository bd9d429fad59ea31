package templates

import (
	"encoding/json"
	"strconv"

	"checkershub.com/checkers/internal/checker"
	"checkershub.com/checkers/internal/navmenu"
)

// PageView is everything the landing page renders.
type PageView struct {
	Panel  PanelView
	Menu   MenuView
	Footer FooterView
}

// PanelView is the render model of the buy/retrieve action panel.
type PanelView struct {
	Modal         string
	CardType      string
	Quantity      int
	PhoneNumber   string
	TransactionID string
	BuyError      string
	RetrieveError string

	QuantityInvalid bool
	PhoneInvalid    bool
}

// ErrorLine is the render model of a form's inline error.
type ErrorLine struct {
	ID      string
	Message string
}

const (
	BuyErrorID      = "buy-error"
	RetrieveErrorID = "retrieve-error"
)

func (v PanelView) BuyErrorLine() ErrorLine {
	return ErrorLine{ID: BuyErrorID, Message: v.BuyError}
}

func (v PanelView) RetrieveErrorLine() ErrorLine {
	return ErrorLine{ID: RetrieveErrorID, Message: v.RetrieveError}
}

type CardOption struct {
	Value string
	Label string
}

// CardOptions lists the select options of the Buy modal.
func (PanelView) CardOptions() []CardOption {
	opts := make([]CardOption, 0, len(checker.CardTypes))
	for _, ct := range checker.CardTypes {
		opts = append(opts, CardOption{Value: string(ct), Label: ct.Upper()})
	}
	return opts
}

// NewPanelView snapshots a panel for rendering.
func NewPanelView(p *checker.Panel) PanelView {
	buy := p.BuyDraft()
	ret := p.RetrieveDraft()
	return PanelView{
		Modal:           p.Modal().String(),
		CardType:        string(buy.CardType),
		Quantity:        buy.Quantity,
		PhoneNumber:     ret.PhoneNumber,
		TransactionID:   ret.TransactionID,
		BuyError:        p.BuyError(),
		RetrieveError:   p.RetrieveError(),
		QuantityInvalid: buy.QuantityOutOfRange(),
		PhoneInvalid:    ret.PhoneLooksInvalid(),
	}
}

// MenuView is the render model of the navigation bar.
type MenuView struct {
	Open  bool
	Phase string
	Items []MenuItemView
}

type MenuItemView struct {
	Label   string
	Href    string
	DelayMs int64
}

// NewMenuView snapshots a menu for rendering. Item delays follow the expand
// stagger so the CSS can animate items in declaration order.
func NewMenuView(m *navmenu.Menu) MenuView {
	staggered := navmenu.Stagger(m.Items(), navmenu.ItemBaseDelay, navmenu.ItemStep)
	items := make([]MenuItemView, len(staggered))
	for i, s := range staggered {
		items[i] = MenuItemView{
			Label:   s.Value.Label,
			Href:    s.Value.Href,
			DelayMs: s.Delay.Milliseconds(),
		}
	}
	return MenuView{
		Open:  m.State() == navmenu.Open,
		Phase: m.Phase().String(),
		Items: items,
	}
}

// FooterView carries the contact details shown in the footer.
type FooterView struct {
	Phone    string
	Email    string
	WhatsApp string
	Year     int
}

// WhatsAppURL is the click-to-chat link for the configured number.
func (f FooterView) WhatsAppURL() string {
	return "https://wa.me/" + f.WhatsApp
}

// YearText renders the copyright year.
func (f FooterView) YearText() string {
	return strconv.Itoa(f.Year)
}

// Signals is the initial Datastar signal set for the page. Signal names are
// shared with the handlers in handlers/panel and handlers/menu.
type Signals struct {
	Modal         string `json:"modal"`
	CardType      string `json:"cardType"`
	Quantity      int    `json:"quantity"`
	PhoneNumber   string `json:"phoneNumber"`
	TransactionID string `json:"transactionId"`
	BuyError      string `json:"buyError"`
	RetrieveError string `json:"retrieveError"`
	Toast         string `json:"toast"`
	MenuOpen      bool   `json:"menuOpen"`
	MenuPhase     string `json:"menuPhase"`
}

// SignalsJSON serialises the initial signals for data-signals.
func (v PageView) SignalsJSON() string {
	b, err := json.Marshal(Signals{
		Modal:         v.Panel.Modal,
		CardType:      v.Panel.CardType,
		Quantity:      v.Panel.Quantity,
		PhoneNumber:   v.Panel.PhoneNumber,
		TransactionID: v.Panel.TransactionID,
		BuyError:      v.Panel.BuyError,
		RetrieveError: v.Panel.RetrieveError,
		MenuOpen:      v.Menu.Open,
		MenuPhase:     v.Menu.Phase,
	})
	if err != nil {
		return "{}"
	}
	return string(b)
}
