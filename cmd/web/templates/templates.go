// Package templates renders the site's pages and the fragments Datastar
// patches into them.
package templates

import (
	"embed"
	"html/template"

	"checkershub.com/checkers/cmd/web/viewtypes"
	"github.com/a-h/templ"
)

//go:embed html/*.gohtml
var files embed.FS

var funcs = template.FuncMap{
	"class": viewtypes.Class,
}

var tmpl = template.Must(template.New("templates").Funcs(funcs).ParseFS(files, "html/*.gohtml"))

func component(name string, data any) templ.Component {
	return templ.FromGoHTML(tmpl.Lookup(name), data)
}

// Index is the landing page: navigation bar, action panel and footer.
func Index(v PageView) templ.Component {
	return component("page", v)
}

// BuyModal is the Buy dialog. Its root carries id "buy-modal".
func BuyModal(v PanelView) templ.Component {
	return component("buy-modal", v)
}

// RetrieveModal is the Retrieve dialog. Its root carries id "retrieve-modal".
func RetrieveModal(v PanelView) templ.Component {
	return component("retrieve-modal", v)
}

// FormError is the inline error line of a modal form. An empty message
// renders an empty placeholder so later patches have a target.
func FormError(id, message string) templ.Component {
	return component("form-error", ErrorLine{ID: id, Message: message})
}

// Toast is the acknowledgement shown after a successful submit.
func Toast(message string) templ.Component {
	return component("toast", message)
}

// Navbar renders the branding link and the mobile menu.
func Navbar(v MenuView) templ.Component {
	return component("navbar", v)
}

// Menu is the mobile menu on its own. Its root carries id "mobile-menu".
func Menu(v MenuView) templ.Component {
	return component("menu", v)
}
