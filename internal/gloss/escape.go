package gloss

import "strings"

var (
	texEscaper = strings.NewReplacer(
		`\`, `\\`,
		`{`, `\{`,
		`}`, `\}`,
		`#`, `\#`,
		`^`, `\^`,
		`␣`, `\␣`,
		`%`, `\%`,
		`&`, `\&`,
	)
	texUnescaper = strings.NewReplacer(
		`\\`, `\`,
		`\{`, `{`,
		`\}`, `}`,
		`\#`, `#`,
		`\^`, `^`,
		`\␣`, `␣`,
		`\%`, `%`,
		`\&`, `&`,
	)
)

// EscapeTeX backslash-escapes the characters LaTeX would otherwise
// interpret. `&` is included because it separates table cells.
func EscapeTeX(s string) string {
	return texEscaper.Replace(s)
}

// UnescapeTeX reverses EscapeTeX.
func UnescapeTeX(s string) string {
	return texUnescaper.Replace(s)
}
