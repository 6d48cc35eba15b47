package render

import (
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
)

// inlineResource renders the template at path wrapped in an element named
// tag, so html/template escapes the template's actions for the context of
// that element (CSS inside <style>, JavaScript inside <script>).
func inlineResource(ctx context.Context, site Site, funcs template.FuncMap, tag, path string, data any) (string, error) {
	src, err := resourceSource(ctx, site, path)
	if err != nil {
		return "", err
	}
	tmpl, err := template.New(path).Funcs(funcs).Parse("<" + tag + ">\n" + src + "\n</" + tag + ">\n")
	if err != nil {
		return "", fmt.Errorf("error parsing %q: %w", path, err)
	}
	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("error executing %q: %w", path, err)
	}
	return out.String(), nil
}

func resourceSource(ctx context.Context, site Site, path string) (string, error) {
	cache, cacheable := site.(ResourceCacher)
	if cacheable {
		if cached := cache.GetCachedResource(ctx, path); cached != nil {
			return *cached, nil
		}
	}
	contents, err := fs.ReadFile(site.TemplateDir(ctx), path)
	if err != nil {
		return "", fmt.Errorf("error reading %q: %w", path, err)
	}
	src := strings.TrimSpace(string(contents))
	if cacheable {
		cache.SetCachedResource(ctx, path, src)
	}
	return src, nil
}
