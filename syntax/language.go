package syntax

import (
	"path/filepath"

	"github.com/alecthomas/chroma/v2/lexers"
)

// PlainText is the language id used when no language can be resolved.
const PlainText = "plaintext"

// ResolveLanguage maps an explicit language id and/or a file path hint to a
// known language id. An explicit id wins when chroma knows it; otherwise the
// path's base name is matched against lexer filename globs. Unresolvable
// inputs yield PlainText, never an error.
func ResolveLanguage(language, path string) string {
	if language != "" {
		if lexer := lexers.Get(language); lexer != nil {
			return lexer.Config().Name
		}
	}
	if path != "" {
		if lexer := lexers.Match(filepath.Base(path)); lexer != nil {
			return lexer.Config().Name
		}
	}
	return PlainText
}
