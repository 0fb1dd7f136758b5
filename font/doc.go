// The font subpackage parses the game's font files and exposes a few
// helpers to obtain information from them (name, glyph coverage).
//
// Both fonts used by the demo are loaded from disk exactly once during
// startup; a missing or corrupt font file is a fatal error for the
// program, so every function here reports failures explicitly instead
// of degrading.
package font
