package font

import "golang.org/x/image/font/sfnt"

// Returns the name of the given font, as stored in the font itself.
func GetName(font *sfnt.Font) (string, error) {
	var buffer sfnt.Buffer
	return font.Name(&buffer, sfnt.NameIDFull)
}

// Returns the runes in the given text that can't be represented by the
// font. If runes are repeated in the input text, the returned slice may
// contain them multiple times too.
//
// The demo uses this during startup to make sure the tile font actually
// covers the glyph set that will be baked into the atlas.
func GetMissingRunes(font *sfnt.Font, text string) ([]rune, error) {
	var buffer sfnt.Buffer

	missing := make([]rune, 0)
	for _, codePoint := range text {
		index, err := font.GlyphIndex(&buffer, codePoint)
		if err != nil { return missing, err }
		if index == 0 { missing = append(missing, codePoint) }
	}
	return missing, nil
}
