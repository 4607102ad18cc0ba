package shell

import (
	"strings"
	"unicode"

	"github.com/tableauio/jsonsh/xerrors"
)

// Tokenize splits a command line into words.
//
// Words are separated by whitespace, except inside quotes or brackets, so
// that JSON values can be typed as they are:
//
//	set name "John Smith"      -> set, name, "John Smith"
//	set tags ["a", "b"]        -> set, tags, ["a", "b"]
//	set note 'it is "quoted"'  -> set, note, it is "quoted"
//
// Double quotes are part of the word, since they delimit JSON strings, and
// a backslash inside them escapes the next character. Single quotes only
// group and are removed.
func Tokenize(line string) ([]string, error) {
	var (
		words   []string
		word    strings.Builder
		inWord  bool
		depth   int // nesting of [] and {} outside of quotes
		inQuote rune
		escaped bool
	)
	for _, r := range line {
		switch {
		case inQuote == '"':
			word.WriteRune(r)
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inQuote = 0
			}
		case inQuote == '\'':
			if r == '\'' {
				inQuote = 0
			} else {
				word.WriteRune(r)
			}
		case r == '\'':
			inQuote, inWord = r, true
		case r == '"':
			inQuote, inWord = r, true
			word.WriteRune(r)
		case unicode.IsSpace(r) && depth == 0:
			if inWord {
				words = append(words, word.String())
				word.Reset()
				inWord = false
			}
		default:
			switch r {
			case '[', '{':
				depth++
			case ']', '}':
				if depth > 0 {
					depth--
				}
			}
			word.WriteRune(r)
			inWord = true
		}
	}
	if inQuote != 0 {
		return nil, xerrors.Newf(xerrors.ErrParse, "unterminated %c quote", inQuote)
	}
	if inWord {
		words = append(words, word.String())
	}
	return words, nil
}
