package css

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gorilla/css/scanner"
	"github.com/swordbreaker/blade-bar/style"
)

// ValueFields splits a property value into comma separated groups of
// whitespace separated fields. Function calls like "rgba(0, 0, 0, 0.3)"
// stay intact as single fields. A scan error means the value text is
// malformed.
func ValueFields(p style.Property) ([][]string, error) {
	return commaGroups(string(p))
}

// commaGroups splits a property value into comma separated groups of
// fields, with function calls like "rgba(0, 0, 0, 0.3)" kept together as
// single fields. Tokenization is left to the scanner of the gorilla/css
// package.
func commaGroups(value string) ([][]string, error) {
	s := scanner.New(value)
	var groups [][]string
	var current []string
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			if len(current) > 0 {
				groups = append(groups, current)
			}
			return groups, nil
		case scanner.TokenError:
			return nil, fmt.Errorf("cannot scan value: %s", tok.Value)
		case scanner.TokenS, scanner.TokenComment:
			// skip
		case scanner.TokenFunction:
			f, err := readFunction(s, tok.Value)
			if err != nil {
				return nil, err
			}
			current = append(current, f)
		case scanner.TokenChar:
			if tok.Value == "," {
				groups = append(groups, current)
				current = nil
			} else {
				current = append(current, tok.Value)
			}
		default:
			current = append(current, tok.Value)
		}
	}
}

// readFunction re-assembles a function call token by token, up to the
// matching closing paren. head is the function token, e.g. "rgba(".
func readFunction(s *scanner.Scanner, head string) (string, error) {
	var b strings.Builder
	b.WriteString(head)
	depth := 1
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF, scanner.TokenError:
			return "", errors.New("unterminated function in property value")
		case scanner.TokenS:
			b.WriteString(" ")
		case scanner.TokenFunction:
			depth++
			b.WriteString(tok.Value)
		case scanner.TokenChar:
			b.WriteString(tok.Value)
			if tok.Value == "(" {
				depth++
			} else if tok.Value == ")" {
				depth--
				if depth == 0 {
					return b.String(), nil
				}
			}
		default:
			b.WriteString(tok.Value)
		}
	}
}
