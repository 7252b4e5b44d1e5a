package sitecontent

import (
	"sort"
	"strings"
)

// CSSVariables maps the palette onto the site's CSS custom properties.
func (c Colors) CSSVariables() map[string]string {
	vars := map[string]string{
		"--color-cream":  c.Cream,
		"--color-dark":   c.Dark,
		"--color-accent": c.Accent,
		"--color-light":  c.Light,
	}
	for key, value := range vars {
		if value == "" {
			delete(vars, key)
		}
	}
	return vars
}

// CSSVariablesInline renders the palette as a style attribute value with
// keys in a stable order.
func (c Colors) CSSVariablesInline() string {
	vars := c.CSSVariables()
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	var builder strings.Builder
	for _, key := range keys {
		builder.WriteString(key)
		builder.WriteString(": ")
		builder.WriteString(vars[key])
		builder.WriteString("; ")
	}
	return strings.TrimSpace(builder.String())
}
