package style

// asciiGlyphs maps the unicode glyphs used by the built-in themes to
// ASCII-safe substitutes. Degradation is deterministic: the same glyph
// always maps to the same substitute.
var asciiGlyphs = map[rune]string{
	'─': "-",
	'═': "=",
	'│': "|",
	'•': "*",
	'●': "*",
	'▪': "*",
	'○': "o",
	'✓': "+",
	'✔': "+",
	'✗': "x",
	'✘': "x",
	'▲': "!",
	'█': "#",
	'░': ".",
	'⟳': "~",
	'…': "...",
	'→': "->",
}

// ASCIIGlyph returns an ASCII-safe rendition of glyph. Known glyphs map
// through the substitution table; any other non-ASCII rune degrades to "*".
func ASCIIGlyph(glyph string) string {
	out := make([]byte, 0, len(glyph))
	for _, r := range glyph {
		if r < 0x80 {
			out = append(out, byte(r))
			continue
		}
		if sub, ok := asciiGlyphs[r]; ok {
			out = append(out, sub...)
			continue
		}
		out = append(out, '*')
	}
	return string(out)
}
