package display

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var sizePrinter = message.NewPrinter(language.AmericanEnglish)

// FormatSize renders a byte count with en-US digit grouping.
func FormatSize(size int64) string {
	switch {
	case size <= 0:
		return "0 byte"
	case size == 1:
		return "1 byte"
	}
	return sizePrinter.Sprintf("%d bytes", size)
}
