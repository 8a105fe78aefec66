package dates

import (
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Token is one piece of a format template: either a formatting token
// such as "YYYY" or literal text copied as is.
type Token struct {
	Text    string
	Literal bool
}

// longest first, so "YYYY" wins over "YY"
//
//nolint:gochecknoglobals // ok
var tokenNames = []string{
	"YYYY", "MMMM", "DDDD", "dddd",
	"MMM", "DDD", "ddd", "SSS",
	"YY", "MM", "DD", "Do", "HH", "hh", "mm", "ss", "ZZ",
	"M", "Q", "D", "d", "E", "H", "h", "m", "s", "A", "a", "Z", "X", "x",
}

// Tokenize splits a template written with moment-style tokens. Text in
// square brackets is literal.
func Tokenize(template string) []Token {
	var tokens []Token
	var literal strings.Builder

	flush := func() {
		if literal.Len() > 0 {
			tokens = append(tokens, Token{Text: literal.String(), Literal: true})
			literal.Reset()
		}
	}

	for i := 0; i < len(template); {
		if template[i] == '[' {
			if end := strings.IndexByte(template[i+1:], ']'); end >= 0 {
				literal.WriteString(template[i+1 : i+1+end])
				i += end + 2
				continue
			}
		}

		name := matchToken(template[i:])

		if name == "" {
			literal.WriteByte(template[i])
			i++
			continue
		}

		flush()
		tokens = append(tokens, Token{Text: name})
		i += len(name)
	}

	flush()

	return tokens
}

func matchToken(s string) string {
	for _, name := range tokenNames {
		if strings.HasPrefix(s, name) {
			return name
		}
	}
	return ""
}

// Directive is how a library spells one template token. Post, when set,
// adjusts the library output (padding, case, zone colon).
type Directive struct {
	Spec string
	Post func(string) string
}

// Vocabulary maps template tokens to a library's directives.
type Vocabulary map[string]Directive

// RenderFunc asks the wrapped library to render a single directive.
type RenderFunc func(t time.Time, spec string) string

// Render formats t one token at a time through the library. Tokens the
// vocabulary does not know are copied verbatim.
func Render(t time.Time, template string, vocabulary Vocabulary, render RenderFunc) string {
	var out strings.Builder

	for _, token := range Tokenize(template) {
		if token.Literal {
			out.WriteString(token.Text)
			continue
		}

		switch token.Text {
		case "X":
			out.WriteString(strconv.FormatInt(t.Unix(), 10))
			continue
		case "x":
			out.WriteString(strconv.FormatInt(t.UnixMilli(), 10))
			continue
		}

		directive, ok := vocabulary[token.Text]

		if !ok {
			out.WriteString(token.Text)
			continue
		}

		rendered := render(t, directive.Spec)

		if directive.Post != nil {
			rendered = directive.Post(rendered)
		}

		out.WriteString(rendered)
	}

	return out.String()
}

// TrimZero drops one leading zero from a two digit number ("09" -> "9").
func TrimZero(s string) string {
	if len(s) > 1 && s[0] == '0' {
		return s[1:]
	}
	return s
}

func Lower(s string) string {
	return strings.ToLower(s)
}

// ZoneColon turns "+0200" into "+02:00".
func ZoneColon(s string) string {
	if len(s) != 5 {
		return s
	}
	return s[:3] + ":" + s[3:]
}

// Millis keeps the first three fractional digits.
func Millis(s string) string {
	if len(s) > 3 {
		return s[:3]
	}
	return s
}

// Ordinal turns a day number into its English ordinal ("26" -> "26th").
func Ordinal(s string) string {
	n, err := strconv.Atoi(s)

	if err != nil {
		return s
	}

	return humanize.Ordinal(n)
}

// QuarterOf turns a month number into its quarter ("09" -> "3").
func QuarterOf(s string) string {
	month, err := strconv.Atoi(s)

	if err != nil || month < 1 || month > 12 {
		return s
	}

	return strconv.Itoa((month-1)/3 + 1)
}

// IsoWeekday turns a Sunday based weekday ("0" to "6") into the ISO one,
// where Sunday is "7".
func IsoWeekday(s string) string {
	if s == "0" {
		return "7"
	}
	return s
}

// TrimZeros drops every leading zero but the last digit ("009" -> "9").
func TrimZeros(s string) string {
	trimmed := strings.TrimLeft(s, "0")

	if trimmed == "" && s != "" {
		return "0"
	}

	return trimmed
}

// PadDayOfYear pads a day of the year to three digits ("9" -> "009").
func PadDayOfYear(s string) string {
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}
