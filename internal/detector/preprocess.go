package detector

import (
	"strings"

	"mvdan.cc/xurls/v2"
)

var urldetector = xurls.Relaxed()

// normalize collapses whitespace runs, strips URLs and truncates the sample
// to max runes. URLs are removed because they pollute both the word and the
// letter-frequency statistics.
func normalize(text string, maxLen int) string {
	text = urldetector.ReplaceAllString(text, " ")
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) > maxLen {
		runes = runes[:maxLen]
		text = strings.TrimSpace(string(runes))
	}
	return text
}
