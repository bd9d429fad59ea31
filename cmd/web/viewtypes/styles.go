package viewtypes

// ============================================================================
// SHARED CSS CLASS CONSTANTS
// Reusable Tailwind class strings used across multiple template files.
// Templates reach these through the "class" template func, e.g. {{class "Card"}}.
// ============================================================================

// Card is the call-to-action card on the landing page.
var Card = "bg-white shadow-lg rounded-2xl hover:shadow-xl transition min-h-[300px] flex flex-col p-6"

// CardTitle is the heading inside a Card.
var CardTitle = "text-center text-xl md:text-2xl font-bold"

// PrimaryButton is the green action button used by cards and modal submits.
var PrimaryButton = "w-full mt-6 px-4 py-2 rounded-md bg-green-600 text-white font-semibold hover:bg-green-700 active:scale-95 transition"

// ModalBackdrop dims the page behind an open modal.
var ModalBackdrop = "modal-backdrop fixed inset-0 z-50 flex items-center justify-center bg-black/50"

// ModalPanel is the dialog box itself.
var ModalPanel = "w-full sm:max-w-md bg-white rounded-lg shadow-xl p-6 space-y-4"

// Label is the standard form label.
var Label = "block text-sm font-medium text-gray-700 mb-1"

// InputClass is the standard text input styling.
var InputClass = "w-full px-3 py-2 border rounded-md border-gray-300 focus:border-blue-500 transition text-sm"

// ErrorText is the inline validation message under a form.
var ErrorText = "text-red-500 text-sm"

// FooterSocial is the round social link button in the footer.
var FooterSocial = "w-10 h-10 flex items-center justify-center rounded-full hover:scale-110 transition-transform"

// byName backs the "class" template func.
var byName = map[string]string{
	"Card":          Card,
	"CardTitle":     CardTitle,
	"PrimaryButton": PrimaryButton,
	"ModalBackdrop": ModalBackdrop,
	"ModalPanel":    ModalPanel,
	"Label":         Label,
	"InputClass":    InputClass,
	"ErrorText":     ErrorText,
	"FooterSocial":  FooterSocial,
}

// Class returns the named class string, or "" for unknown names.
func Class(name string) string {
	return byName[name]
}
