// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/esfront/esfront/syntax"
)

// stringValue returns the value of a string literal.
func (p *parser) stringValue(n *sitter.Node) string {
	raw := p.text(n)
	if len(raw) < 2 {
		p.errorf(n, "malformed string literal")
	}
	s, ok := unescape(raw[1:len(raw)-1], false)
	if !ok {
		p.errorf(n, "invalid escape sequence in string literal")
	}
	return s
}

// number converts a numeric literal, which may be a BigInt literal.
func (p *parser) number(n *sitter.Node) syntax.Expr {
	x := p.extent(n)
	raw := p.text(n)
	if strings.HasSuffix(raw, "n") {
		return &syntax.BigIntLiteral{Extent: x, Raw: raw[:len(raw)-1]}
	}
	v, ok := parseNumber(raw)
	if !ok {
		p.errorf(n, "invalid number %s", raw)
	}
	return &syntax.NumericLiteral{Extent: x, Raw: raw, Value: v}
}

// parseNumber returns the value of a numeric literal, including the
// legacy octal form 017.
func parseNumber(raw string) (float64, bool) {
	s := strings.ReplaceAll(raw, "_", "")
	if len(s) > 1 && s[0] == '0' {
		base := 0
		digits := s[2:]
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		default:
			if strings.Trim(s, "01234567") == "" {
				base, digits = 8, s[1:]
			}
		}
		if base != 0 {
			i, ok := new(big.Int).SetString(digits, base)
			if !ok {
				return 0, false
			}
			f, _ := new(big.Float).SetInt(i).Float64()
			return f, true
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if e, ok := err.(*strconv.NumError); ok && e.Err == strconv.ErrRange {
			return f, !math.IsNaN(f)
		}
		return 0, false
	}
	return f, true
}

// normalizeNewlines replaces CR LF and lone CR with LF, as template
// literals require.
func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\r", "\n")
}

// unescape interprets the escape sequences of the body of a string
// literal or template. Templates reject legacy octal escapes. It
// reports false for a malformed escape.
func unescape(s string, template bool) (string, bool) {
	if !strings.Contains(s, `\`) {
		return s, true
	}
	var b strings.Builder
	for i := 0; i < len(s); {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		i++
		if i >= len(s) {
			return "", false
		}
		c = s[i]
		i++
		switch c {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '\r':
			if i < len(s) && s[i] == '\n' {
				i++
			}
		case '\n':
		case '0', '1', '2', '3', '4', '5', '6', '7':
			if c == '0' && (i >= len(s) || !isDigit(s[i])) {
				b.WriteByte(0)
				break
			}
			if template {
				return "", false
			}
			// Legacy octal escape: at most three digits, value below 256.
			v := int(c - '0')
			digits := 2
			if c > '3' {
				digits = 1
			}
			for k := 0; k < digits && i < len(s) && s[i] >= '0' && s[i] <= '7'; k++ {
				v = v*8 + int(s[i]-'0')
				i++
			}
			b.WriteRune(rune(v))
		case '8', '9':
			if template {
				return "", false
			}
			b.WriteByte(c)
		case 'x':
			if i+2 > len(s) {
				return "", false
			}
			v, err := strconv.ParseUint(s[i:i+2], 16, 8)
			if err != nil {
				return "", false
			}
			i += 2
			b.WriteRune(rune(v))
		case 'u':
			r, n, ok := unicodeEscape(s[i:])
			if !ok {
				return "", false
			}
			i += n
			if utf16.IsSurrogate(r) && strings.HasPrefix(s[i:], `\u`) {
				if r2, n2, ok := unicodeEscape(s[i+2:]); ok {
					if dec := utf16.DecodeRune(r, r2); dec != utf8.RuneError {
						r = dec
						i += 2 + n2
					}
				}
			}
			b.WriteRune(r)
		default:
			// A line separator or paragraph separator continues the line.
			if c >= utf8.RuneSelf {
				r, size := utf8.DecodeRuneInString(s[i-1:])
				i += size - 1
				if r == '\u2028' || r == '\u2029' {
					break
				}
				b.WriteRune(r)
				break
			}
			b.WriteByte(c)
		}
	}
	return b.String(), true
}

// unicodeEscape decodes the part of a \u escape after the u, either
// four hex digits or a braced code point. It returns the number of
// bytes consumed.
func unicodeEscape(s string) (rune, int, bool) {
	if strings.HasPrefix(s, "{") {
		end := strings.IndexByte(s, '}')
		if end < 2 {
			return 0, 0, false
		}
		v, err := strconv.ParseUint(s[1:end], 16, 32)
		if err != nil || v > unicode.MaxRune {
			return 0, 0, false
		}
		return rune(v), end + 1, true
	}
	if len(s) < 4 {
		return 0, 0, false
	}
	v, err := strconv.ParseUint(s[:4], 16, 16)
	if err != nil {
		return 0, 0, false
	}
	return rune(v), 4, true
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
