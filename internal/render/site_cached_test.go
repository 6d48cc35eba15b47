package render_test

import (
	"bytes"
	"context"
	"html/template"
	"slices"
	"strings"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/phonefixpro/site/internal/render"
)

type CachedSiteFoo struct{}

func (CachedSiteFoo) Templates(_ context.Context) []string {
	return []string{"base.tmpl", "foo.tmpl"}
}

func (CachedSiteFoo) Key(_ context.Context) string {
	return "foo.tmpl"
}

func (CachedSiteFoo) ExecutedTemplate(_ context.Context) string {
	return "base.tmpl"
}

type CachedSiteBar struct {
	IncludeBaz bool
}

func (bar CachedSiteBar) Templates(_ context.Context) []string {
	templates := []string{"base.tmpl", "bar.tmpl"}
	if bar.IncludeBaz {
		templates = append(templates, "baz.tmpl")
	}
	return templates
}

func (bar CachedSiteBar) Key(_ context.Context) string {
	if bar.IncludeBaz {
		return "bar.tmpl+baz.tmpl"
	}
	return "bar.tmpl"
}

func (CachedSiteBar) ExecutedTemplate(_ context.Context) string {
	return "base.tmpl"
}

func cachedSiteFS() fstest.MapFS {
	return fstest.MapFS(map[string]*fstest.MapFile{
		"foo.tmpl": {
			Data:    []byte(`{{ define "template_name" }}foo.tmpl{{ end }}`),
			Mode:    0o777,
			ModTime: time.Now(),
		},
		"bar.tmpl": {
			Data:    []byte(`{{ define "template_name" }}bar.tmpl{{ if .Page.IncludeBaz }} {{ block "variable_include" . }}{{ end }}{{ end }}{{ end }}`),
			Mode:    0o777,
			ModTime: time.Now(),
		},
		"baz.tmpl": {
			Data:    []byte(`{{ define "variable_include" }}included baz.tmpl{{ end }}`),
			Mode:    0o777,
			ModTime: time.Now(),
		},
		"base.tmpl": {
			Data:    []byte(`{{ block "template_name" . }}base.tmpl{{ end }}`),
			Mode:    0o777,
			ModTime: time.Now(),
		},
	})
}

func TestCachedSite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fsys := cachedSiteFS()
	site := render.NewCachedSite(fsys)
	renderChangeAndRerender(ctx, t, fsys, CachedSiteFoo{}, site, "foo.tmpl", "foo.tmpl")
	renderChangeAndRerender(ctx, t, fsys, CachedSiteBar{}, site, "bar.tmpl", "bar.tmpl")
	renderChangeAndRerender(ctx, t, fsys, CachedSiteBar{IncludeBaz: true}, site, "bar.tmpl", "bar.tmpl included baz.tmpl")
}

func TestCachedSiteReset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fsys := cachedSiteFS()
	site := render.NewCachedSite(fsys)

	var out bytes.Buffer
	render.Render(ctx, &out, site, CachedSiteFoo{})
	if got := out.String(); got != "foo.tmpl" {
		t.Fatalf("Expected %q, got %q", "foo.tmpl", got)
	}

	fsys["foo.tmpl"].Data = []byte(`{{ define "template_name" }}changed{{ end }}`)
	site.Reset(ctx)
	if cached := site.GetCachedTemplate(ctx, "foo.tmpl"); cached != nil {
		t.Fatal("Expected template cache to be empty after Reset")
	}

	out.Reset()
	render.Render(ctx, &out, site, CachedSiteFoo{})
	if got := out.String(); got != "changed" {
		t.Errorf("Expected %q after Reset, got %q", "changed", got)
	}
}

func TestCachedSiteLoadTemplateParsesOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	site := render.NewCachedSite(cachedSiteFS())

	var (
		mu    sync.Mutex
		calls int
		wg    sync.WaitGroup
	)
	release := make(chan struct{})
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := site.LoadTemplate(ctx, "key", func() (*template.Template, error) {
				mu.Lock()
				calls++
				mu.Unlock()
				<-release
				return template.New("key"), nil
			})
			if err != nil {
				t.Errorf("Unexpected error: %s", err)
			}
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if calls != 1 {
		t.Fatalf("Expected 1 parse, got %d", calls)
	}
	if site.GetCachedTemplate(ctx, "key") == nil {
		t.Error("Expected parsed template to be cached")
	}

	// once cached, parse is never called again
	_, err := site.LoadTemplate(ctx, "key", func() (*template.Template, error) {
		t.Error("Unexpected parse of cached key")
		return nil, nil
	})
	if err != nil {
		t.Errorf("Unexpected error: %s", err)
	}
}

func TestCachedSiteResetDuringParse(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	site := render.NewCachedSite(cachedSiteFS())

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan *template.Template, 1)
	go func() {
		tmpl, err := site.LoadTemplate(ctx, "key", func() (*template.Template, error) {
			close(started)
			<-release
			return template.New("before-reset"), nil
		})
		if err != nil {
			t.Errorf("Unexpected error: %s", err)
		}
		done <- tmpl
	}()
	<-started

	site.Reset(ctx)

	// a load after the Reset parses again instead of waiting on the
	// parse already in flight
	fresh, err := site.LoadTemplate(ctx, "key", func() (*template.Template, error) {
		return template.New("after-reset"), nil
	})
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if fresh.Name() != "after-reset" {
		t.Errorf("Expected a fresh parse after Reset, got %q", fresh.Name())
	}

	close(release)
	if stale := <-done; stale.Name() != "before-reset" {
		t.Errorf("Expected the in-flight caller to get its own parse, got %q", stale.Name())
	}

	cached := site.GetCachedTemplate(ctx, "key")
	if cached == nil || cached.Name() != "after-reset" {
		t.Errorf("Expected the parse started before Reset not to be cached, got %v", cached)
	}
}

func renderChangeAndRerender(ctx context.Context, t *testing.T, fs fstest.MapFS, page render.Page, site render.Site, file, expected string) {
	t.Helper()

	var out bytes.Buffer
	render.Render(ctx, &out, site, page)
	if output := out.String(); output != expected {
		t.Errorf("Expected to get %q, got %q", expected, output)
	}
	out.Reset()
	oldData := slices.Clone(fs[file].Data)
	fs[file].Data = []byte(strings.ReplaceAll(string(fs[file].Data), expected, "changed-"+expected))
	render.Render(ctx, &out, site, page)
	if output := out.String(); output != expected {
		t.Errorf("Expected to get %q after modifying underlying data, got %q", expected, output)
	}
	fs[file].Data = oldData
}
