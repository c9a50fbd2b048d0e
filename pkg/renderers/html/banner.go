package html

import (
	"strings"
	"unicode/utf8"
)

const bannerWidth = 63

// banner draws the boxed heading shown above the registration window. Titles
// longer than the box are cut.
func banner(title string) string {
	rule := strings.Repeat("═", bannerWidth)
	var b strings.Builder
	b.WriteString("╔" + rule + "╗\n")
	b.WriteString("║" + bannerLine("EVENT REGISTRATION SYSTEM v2.1.0") + "║\n")
	b.WriteString("║" + bannerLine(title) + "║\n")
	b.WriteString("╚" + rule + "╝")
	return b.String()
}

func bannerLine(text string) string {
	text = "  " + text
	if n := utf8.RuneCountInString(text); n < bannerWidth {
		return text + strings.Repeat(" ", bannerWidth-n)
	}
	runes := []rune(text)
	return string(runes[:bannerWidth])
}
