package codegen

import (
	"strings"
	"unicode"
)

// exportedName turns a wire member name into a Go field name: restApiId
// becomes RestApiId. Acronyms are left as the service spells them.
func exportedName(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// snakeCase converts a shape name to the suffix of its file name.
func snakeCase(name string) string {
	r := []rune(name)
	var b strings.Builder
	for i, c := range r {
		if unicode.IsUpper(c) && i > 0 {
			prev := r[i-1]
			nextLower := i+1 < len(r) && unicode.IsLower(r[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(c))
	}
	return b.String()
}

// enumConstName builds the constant name for an enum value.
func enumConstName(enum string, v EnumValue) string {
	if v.Name != "" {
		return enum + v.Name
	}
	parts := strings.FieldsFunc(v.Value, func(c rune) bool {
		return !unicode.IsLetter(c) && !unicode.IsDigit(c)
	})
	var b strings.Builder
	b.WriteString(enum)
	for _, p := range parts {
		p = strings.ToLower(p)
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// wrap splits text into lines of at most width characters on word
// boundaries. A single word longer than width gets its own line.
func wrap(text string, width int) []string {
	var lines []string
	var line string
	for _, w := range strings.Fields(text) {
		switch {
		case line == "":
			line = w
		case len(line)+1+len(w) <= width:
			line += " " + w
		default:
			lines = append(lines, line)
			line = w
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
