package config

import "strings"

// RenderTemplate replaces {key} placeholders with values from vars in a single
// pass. Unknown placeholders are left untouched.
func RenderTemplate(tmpl string, vars map[string]string) string {
	var b strings.Builder
	rest := tmpl
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			return b.String()
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			b.WriteString(rest)
			return b.String()
		}
		end += open

		key := rest[open+1 : end]
		b.WriteString(rest[:open])
		if value, ok := vars[key]; ok && !strings.ContainsAny(key, "{ ") {
			b.WriteString(value)
			rest = rest[end+1:]
			continue
		}
		// Not a known key: emit the brace and keep scanning after it.
		b.WriteByte('{')
		rest = rest[open+1:]
	}
}
