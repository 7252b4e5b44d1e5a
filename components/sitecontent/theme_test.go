package sitecontent

import "testing"

func TestColorsCSSVariables(t *testing.T) {
	vars := DefaultContent().Colors.CSSVariables()
	if vars["--color-accent"] != "#c4622d" {
		t.Fatalf("unexpected accent %q", vars["--color-accent"])
	}
	if len(vars) != 4 {
		t.Fatalf("expected 4 variables, got %d", len(vars))
	}
}

func TestColorsCSSVariablesInline(t *testing.T) {
	got := Colors{Dark: "#111111", Cream: "#fff"}.CSSVariablesInline()
	want := "--color-cream: #fff; --color-dark: #111111;"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if got := (Colors{}).CSSVariablesInline(); got != "" {
		t.Fatalf("expected empty style, got %q", got)
	}
}
