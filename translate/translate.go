// Package translate renders user-facing strings in the host locale.
//
// Diagnostic text is authored as en-US Sprintf formats and routed through
// From, so a gotext message catalog can localize it without touching the
// call sites.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// fallback is used when the host reports no usable locale.
const fallback = "en-US"

var printer = newPrinter()

func newPrinter() *message.Printer {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("decody: locale: %v", err)
	}

	locales = append(locales, fallback)

	return message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
