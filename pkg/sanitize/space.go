package sanitize

// isSpace reports whether r belongs to the whitespace class accepted by the
// registration form. The set matches the \s class of browser regular
// expressions, which differs from unicode.IsSpace: it includes U+FEFF and
// excludes U+0085.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r',
		'\u00a0', '\u1680', '\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}
	return r >= '\u2000' && r <= '\u200a'
}

func isLatinAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
