package sanitize

import "strings"

// Sanitize converts input into a slug-safe value. The steps run in order:
// trim outer whitespace, lowercase, drop every rune outside [a-z0-9\s-],
// replace each whitespace run with a hyphen, then collapse hyphen runs.
//
// Hyphens already at the edges of the trimmed input are kept. The result is a
// fixed point: Sanitize(Sanitize(s)) == Sanitize(s).
func Sanitize(input string) string {
	s := strings.TrimFunc(input, isSpace)
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))

	pendingHyphen := false
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingHyphen {
				b.WriteByte('-')
				pendingHyphen = false
			}
			b.WriteRune(r)
		case r == '-' || isSpace(r):
			pendingHyphen = true
		}
	}
	if pendingHyphen {
		b.WriteByte('-')
	}
	return b.String()
}
