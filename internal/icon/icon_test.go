package icon_test

import (
	"strings"
	"testing"

	"github.com/phonefixpro/site/internal/content"
	"github.com/phonefixpro/site/internal/icon"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"smartphone":       true,
		"battery-charging": true,
		"droplets":         true,
		"settings":         true,
		"not-a-real-icon":  false,
		"Smartphone":       false,
		" smartphone":      false,
		"":                 false,
	}
	for name, found := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			glyph, ok := icon.Lookup(name)
			if ok != found {
				t.Fatalf("Expected found=%v for %q, got %v", found, name, ok)
			}
			if ok && glyph.Name() != name {
				t.Errorf("Expected glyph name %q, got %q", name, glyph.Name())
			}
		})
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	out := string(icon.Render("smartphone", "h-6 w-6 text-blue-600"))
	for _, want := range []string{
		`<svg `,
		`class="h-6 w-6 text-blue-600"`,
		`data-icon="smartphone"`,
		`viewBox="0 0 24 24"`,
		`<path d="M12 18h.01"></path>`,
		`</svg>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected glyph markup to contain %q, got %s", want, out)
		}
	}
}

func TestRenderMiss(t *testing.T) {
	t.Parallel()

	if out := icon.Render("not-a-real-icon", "h-6 w-6"); out != "" {
		t.Errorf("Expected empty markup for an unknown icon, got %q", out)
	}
}

func TestRenderWithoutClass(t *testing.T) {
	t.Parallel()

	if out := string(icon.Render("star", "")); strings.Contains(out, "class=") {
		t.Errorf("Expected no class attribute, got %s", out)
	}
}

func TestServiceIconsResolve(t *testing.T) {
	t.Parallel()

	for _, service := range content.Services() {
		if _, ok := icon.Lookup(service.Icon); !ok {
			t.Errorf("Service %d uses icon %q, which is not in the catalog", service.ID, service.Icon)
		}
	}
}

func TestNamesSorted(t *testing.T) {
	t.Parallel()

	names := icon.Names()
	if len(names) != 10 {
		t.Fatalf("Expected 10 catalog entries, got %d: %v", len(names), names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Expected names sorted, got %q before %q", names[i-1], names[i])
		}
	}
}
