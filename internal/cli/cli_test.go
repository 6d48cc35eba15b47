package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/phonefixpro/site/internal/content"
)

// run executes the root command with args and returns what it wrote to
// stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	file := filepath.Join(t.TempDir(), "phonefixpro.yaml")
	if err := os.WriteFile(file, []byte(body), 0o600); err != nil {
		t.Fatalf("Unexpected error writing config: %s", err)
	}
	return file
}

func TestRenderToFile(t *testing.T) {
	t.Parallel()

	cfg := writeConfig(t, "business:\n  name: FixIt Jakarta\n")
	page := filepath.Join(t.TempDir(), "index.html")

	out, err := run(t, "--config", cfg, "render", "-o", page, "--year", "2030")
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if out != "wrote "+page+"\n" {
		t.Errorf("Unexpected output %q", out)
	}
	data, err := os.ReadFile(page)
	if err != nil {
		t.Fatalf("Unexpected error reading page: %s", err)
	}
	if !strings.Contains(string(data), "&copy; 2030 FixIt Jakarta") {
		t.Errorf("Expected the configured name and year in the footer, got %s", data)
	}
}

func TestRenderToStdout(t *testing.T) {
	t.Parallel()

	cfg := writeConfig(t, "log:\n  level: error\n")
	out, err := run(t, "--config", cfg, "render")
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if !strings.HasPrefix(out, "<!doctype html>") {
		t.Errorf("Expected an HTML document, got %q", out[:min(len(out), 40)])
	}
}

func TestRenderFailureWritesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := writeConfig(t, "templates:\n  dir: "+dir+"\n")
	page := filepath.Join(t.TempDir(), "index.html")

	_, err := run(t, "--config", cfg, "render", "-o", page)
	if err == nil {
		t.Fatal("Expected an error rendering from an empty template directory")
	}
	if _, statErr := os.Stat(page); !os.IsNotExist(statErr) {
		t.Errorf("Expected no output file after a failed render, got %v", statErr)
	}
}

func TestInvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := writeConfig(t, "log:\n  format: xml\n")
	if _, err := run(t, "--config", cfg, "render"); err == nil {
		t.Fatal("Expected an error for an invalid config")
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	out, err := run(t, "check")
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if out != "ok: 4 services, 3 gallery items, 3 testimonials\n" {
		t.Errorf("Unexpected output %q", out)
	}
}

func TestContent(t *testing.T) {
	t.Parallel()

	out, err := run(t, "content")
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	var dump contentDump
	if err := yaml.Unmarshal([]byte(out), &dump); err != nil {
		t.Fatalf("Unexpected error decoding %q: %s", out, err)
	}
	if len(dump.Services) != len(content.Services()) ||
		len(dump.Gallery) != len(content.Gallery()) ||
		len(dump.Testimonials) != len(content.Testimonials()) {
		t.Errorf("Expected every record in the dump, got %d/%d/%d",
			len(dump.Services), len(dump.Gallery), len(dump.Testimonials))
	}
	if dump.Services[0] != content.Services()[0] {
		t.Errorf("Expected %+v, got %+v", content.Services()[0], dump.Services[0])
	}
	if !strings.Contains(out, "icon: smartphone") {
		t.Errorf("Expected snake_case yaml keys, got %s", out)
	}
}
