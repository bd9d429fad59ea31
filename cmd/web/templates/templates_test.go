package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"checkershub.com/checkers/cmd/web/viewtypes"
	"checkershub.com/checkers/internal/checker"
	"checkershub.com/checkers/internal/navmenu"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

// rootTag returns the opening tag of the first element.
func rootTag(html string) string {
	return html[:strings.Index(html, ">")+1]
}

func testPage() PageView {
	return PageView{
		Panel: NewPanelView(checker.NewPanel(checker.NewLocalDesk())),
		Menu:  NewMenuView(navmenu.New(navmenu.DefaultItems)),
		Footer: FooterView{
			Phone:    "+233 55 944 1309",
			Email:    "support@checkershub.com",
			WhatsApp: "233559441309",
			Year:     2026,
		},
	}
}

func TestIndex_RendersAllSections(t *testing.T) {
	t.Parallel()

	html := render(t, Index(testPage()))

	require.Contains(t, html, "<!DOCTYPE html>")
	require.Contains(t, html, `id="mobile-menu"`)
	require.Contains(t, html, `id="action-panel"`)
	require.Contains(t, html, `id="buy-modal"`)
	require.Contains(t, html, `id="retrieve-modal"`)
	require.Contains(t, html, `id="buy-error"`)
	require.Contains(t, html, `id="retrieve-error"`)
	require.Contains(t, html, `id="toast"`)
	require.Contains(t, html, "Buy Card Now")
	require.Contains(t, html, "Retrieve Card")
	require.Contains(t, html, "support@checkershub.com")
	require.Contains(t, html, "https://wa.me/233559441309")
	require.Contains(t, html, "© 2026 Powered by Checkers Hub")
	require.Contains(t, html, "data-signals=")
}

func TestIndex_MenuItemsInDeclarationOrder(t *testing.T) {
	t.Parallel()

	html := render(t, Navbar(testPage().Menu))

	home := strings.Index(html, `data-menu-item="Home"`)
	buy := strings.Index(html, `data-menu-item="Buy"`)
	retrieve := strings.Index(html, `data-menu-item="Retrieve"`)
	require.True(t, home >= 0 && home < buy && buy < retrieve)

	require.Contains(t, html, "--stagger-delay: 150ms")
	require.Contains(t, html, "--stagger-delay: 250ms")
	require.Contains(t, html, "--stagger-delay: 350ms")
	require.Contains(t, html, `data-phase="hidden"`)
}

func TestModals_VisibilityFollowsModal(t *testing.T) {
	t.Parallel()

	p := checker.NewPanel(checker.NewLocalDesk())
	p.OpenBuy()
	v := NewPanelView(p)

	buy := render(t, BuyModal(v))
	require.NotContains(t, rootTag(buy), "display:none")

	retrieve := render(t, RetrieveModal(v))
	require.Contains(t, rootTag(retrieve), "display:none")
}

func TestBuyModal_KeepsDraftAndFlagsQuantity(t *testing.T) {
	t.Parallel()

	p := checker.NewPanel(checker.NewLocalDesk())
	p.UpdateBuyDraft(checker.BuyOrderDraft{CardType: checker.CardBECE, Quantity: 0})
	html := render(t, BuyModal(NewPanelView(p)))

	require.Contains(t, html, `<option value="bece" selected>BECE</option>`)
	require.Contains(t, html, `value="0"`)
	require.Contains(t, html, viewtypes.InputClass+` border-red-500"`)
}

func TestRetrieveModal_EscapesDraft(t *testing.T) {
	t.Parallel()

	p := checker.NewPanel(checker.NewLocalDesk())
	p.UpdateRetrieveDraft(checker.RetrievalRequestDraft{TransactionID: `"><script>alert(1)</script>`})
	html := render(t, RetrieveModal(NewPanelView(p)))

	require.NotContains(t, html, "<script>alert(1)</script>")
}

func TestFormError(t *testing.T) {
	t.Parallel()

	empty := render(t, FormError(BuyErrorID, ""))
	require.Contains(t, empty, `id="buy-error"`)
	require.Contains(t, empty, "display:none")

	msg := render(t, FormError(RetrieveErrorID, checker.MsgTransactionNeeded))
	require.Contains(t, msg, checker.MsgTransactionNeeded)
	require.NotContains(t, msg, "display:none")
}

func TestToast(t *testing.T) {
	t.Parallel()

	html := render(t, Toast("Order placed: 5 x WASSCE cards"))
	require.Contains(t, html, "Order placed: 5 x WASSCE cards")
	require.NotContains(t, html, "display:none")
}

func TestSignalsJSON(t *testing.T) {
	t.Parallel()

	js := testPage().SignalsJSON()
	require.Contains(t, js, `"modal":"closed"`)
	require.Contains(t, js, `"quantity":1`)
	require.Contains(t, js, `"menuPhase":"hidden"`)
	require.Contains(t, js, `"menuOpen":false`)
}

func TestFooter_WhatsAppLineUsesWhatsAppNumber(t *testing.T) {
	t.Parallel()

	page := testPage()
	page.Footer.Phone = "+233 20 000 0000"
	page.Footer.WhatsApp = "233559441309"

	html := render(t, Index(page))
	require.Contains(t, html, "WhatsApp: 233559441309")
	require.NotContains(t, html, "WhatsApp: +233 20 000 0000")
	require.Contains(t, html, "https://wa.me/233559441309")
}
