// Package translate formats assembler and emulator messages for the user's
// locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DEFAULT_LOCALE is used when no system locale can be parsed.
const DEFAULT_LOCALE = "en-US"

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("mipsim: locale: %v", err)
	}

	for _, tag := range append(locales, DEFAULT_LOCALE) {
		if SetLocale(tag) == nil {
			break
		}
	}
}

// SetLocale selects the locale of all later messages, such as "de-DE".
// Numbers in messages are grouped per the locale.
func SetLocale(tag string) (err error) {
	lang, err := language.Parse(tag)
	if err != nil {
		return
	}

	printer = message.NewPrinter(lang)
	return
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
