package query

// Splice replaces the span of text with replacement and returns the new text
// together with the cursor placed right after the replacement. Offsets are runes;
// a span outside the text is clamped to it.
func Splice(text string, span Span, replacement string) (string, int) {
	runes := []rune(text)
	start, end := clampSpan(span, len(runes))
	repl := []rune(replacement)

	out := make([]rune, 0, len(runes)-(end-start)+len(repl))
	out = append(out, runes[:start]...)
	out = append(out, repl...)
	out = append(out, runes[end:]...)
	return string(out), start + len(repl)
}
