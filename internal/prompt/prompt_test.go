package prompt

import (
	"strings"
	"testing"

	"momentclass/internal/category"
)

func TestRenderDeterministic(t *testing.T) {
	first, err := Render(DemoText)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	second, err := Render(DemoText)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	if first != second {
		t.Error("two renders of the same text differ")
	}
}

func TestRenderCategoryListInOrder(t *testing.T) {
	out, err := Render(DemoText)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	// The category list quotes each value once, in declaration order.
	prev := -1
	for _, c := range category.All() {
		quoted := "'" + string(c) + "'"
		if n := strings.Count(out, quoted); n != 1 {
			t.Errorf("prompt contains %s %d times, want 1", quoted, n)
		}
		idx := strings.Index(out, quoted)
		if idx <= prev {
			t.Errorf("category %q appears out of declaration order", c)
		}
		prev = idx
	}
}

func TestRenderSchemaEnumOnce(t *testing.T) {
	out, err := Render(DemoText)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	// Each double-quoted value belongs to the schema enum only.
	for _, c := range category.Strings() {
		quoted := `"` + c + `"`
		if n := strings.Count(out, quoted); n != 1 {
			t.Errorf("prompt contains %s %d times, want 1", quoted, n)
		}
	}
}

func TestRenderContainsInputVerbatim(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"demo text", DemoText},
		{"plain text", "We watched the sunrise together."},
		{"text with quotes", `She said "well done" and hugged me.`},
		{"empty text", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Render(tt.text)
			if err != nil {
				t.Fatalf("Render() error: %v", err)
			}
			if !strings.Contains(out, "Input: "+tt.text) {
				t.Errorf("prompt does not contain the input text verbatim")
			}
		})
	}
}

func TestRenderEndsWithOutputCue(t *testing.T) {
	out, err := Render(DemoText)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	if !strings.HasSuffix(out, "Output:") {
		t.Errorf("prompt does not end with the output cue, got tail %q", out[len(out)-20:])
	}
}

func TestRenderTrimmed(t *testing.T) {
	out, err := Render("  padded input  ")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	if out != strings.TrimSpace(out) {
		t.Error("prompt has leading or trailing whitespace")
	}
}

func TestRenderNamesBothSchemaFields(t *testing.T) {
	out, err := Render(DemoText)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	for _, field := range []string{`"explanation"`, `"classification"`} {
		if !strings.Contains(out, field) {
			t.Errorf("prompt schema does not name the %s field", field)
		}
	}
}
