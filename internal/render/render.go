package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/phonefixpro/site/internal/render"

var (
	// ErrNoTemplatePath is returned when a template path is needed, but
	// none are supplied.
	ErrNoTemplatePath = errors.New("need at least one template path")

	// ErrTemplatePatternMatchesNoFiles is returned when a template path is
	// a pattern, but that pattern doesn't match any files.
	ErrTemplatePatternMatchesNoFiles = errors.New("pattern matches no files")
)

// Component is a piece of UI that can be rendered to HTML.
type Component interface {
	// Templates returns the paths, or glob patterns, of the
	// html/template files that need to be parsed before the Component
	// can be rendered.
	Templates(context.Context) []string
}

// ComponentUser is an interface that a Component can optionally implement to
// list the Components it relies on. Their templates, FuncMaps and resources
// are included whenever the Component is rendered.
type ComponentUser interface {
	UseComponents(context.Context) []Component
}

// FuncMapExtender is an interface that Components and Sites can fulfill to
// add to the functions available to templates when rendering.
type FuncMapExtender interface {
	FuncMap(context.Context) template.FuncMap
}

// Page is a Component that can be passed to Render. It defines a single
// logical page, composed of one or more Components, and holds all the data
// needed to render them.
type Page interface {
	Component

	// Key is used to cache the page's parsed templates. It should be
	// consistent, and unique per set of templates.
	Key(context.Context) string

	// ExecutedTemplate is the name of the template that gets executed
	// when rendering the page. This is usually the base layout template,
	// whose blocks the page's own templates fill in.
	ExecutedTemplate(context.Context) string
}

// RenderData is the data a Page's templates are executed with.
type RenderData[SiteType Site, PageType Page] struct {
	// Site holds the configuration shared by every page.
	Site SiteType

	// Page holds the data for the page being rendered.
	Page PageType

	// CSS holds the <link> and <style> elements collected from the
	// page's Components.
	CSS template.HTML

	// HeaderJS holds the <script> elements meant for the document head.
	HeaderJS template.HTML

	// FooterJS holds the <script> elements meant for the end of the
	// document body.
	FooterJS template.HTML
}

// Render renders page to out. If that fails nothing of the failed page is
// written; the Site's ServerErrorPage is rendered instead if the Site
// implements ServerErrorPager, or a short plain-text message otherwise. If
// out is an http.ResponseWriter, the error output is sent with a 500 status.
func Render[SiteType Site, PageType Page](ctx context.Context, out io.Writer, site SiteType, page PageType) {
	err := RenderE(ctx, out, site, page)
	if err == nil {
		return
	}

	Logger(ctx).ErrorContext(ctx, "error rendering page", "page", fmt.Sprintf("%T", page), "error", err)

	var body bytes.Buffer
	if pager, ok := Site(site).(ServerErrorPager); ok {
		if err := RenderE(ctx, &body, site, pager.ServerErrorPage(ctx)); err != nil {
			Logger(ctx).ErrorContext(ctx, "error rendering server error page", "error", err)
			body.Reset()
		}
	}
	plain := body.Len() == 0
	if plain {
		body.WriteString("Server error.")
	}

	if rw, ok := out.(http.ResponseWriter); ok {
		if plain {
			rw.Header().Set("Content-Type", "text/plain; charset=utf-8")
		}
		rw.WriteHeader(http.StatusInternalServerError)
	}
	if _, err := body.WriteTo(out); err != nil {
		Logger(ctx).ErrorContext(ctx, "error writing server error page", "error", err)
	}
}

// RenderE renders page to out and returns any error encountered. The page is
// executed into a buffer first, so out receives nothing if rendering fails.
func RenderE[SiteType Site, PageType Page](ctx context.Context, out io.Writer, site SiteType, page PageType) (err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "render.Render", trace.WithAttributes(
		attribute.String("render.page", fmt.Sprintf("%T", page)),
		attribute.String("render.key", page.Key(ctx)),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "render failed")
		}
		span.End()
	}()

	var buf bytes.Buffer
	if err := basicRender(ctx, &buf, site, page); err != nil {
		return err
	}
	if _, err := buf.WriteTo(out); err != nil {
		return fmt.Errorf("error writing %T: %w", page, err)
	}
	return nil
}

func basicRender[SiteType Site, PageType Page](ctx context.Context, output io.Writer, site SiteType, page PageType) error {
	funcMap := getComponentFuncMap(ctx, site, page)
	tmpl, err := getTemplate(ctx, site, page, funcMap)
	if err != nil {
		return err
	}

	components := getRecursiveComponents(ctx, page)
	data := RenderData[SiteType, PageType]{
		Site: site,
		Page: page,
	}
	css, err := renderCSS(ctx, site, funcMap, components, data)
	if err != nil {
		return err
	}
	headerJS, footerJS, err := renderJS(ctx, site, funcMap, components, data)
	if err != nil {
		return err
	}
	data.CSS = css
	data.HeaderJS = headerJS
	data.FooterJS = footerJS

	executed := page.ExecutedTemplate(ctx)
	err = tmpl.ExecuteTemplate(output, executed, data)
	if err != nil {
		return fmt.Errorf("error executing template %q for %T: %w", executed, page, err)
	}
	return nil
}

func getTemplate(ctx context.Context, site Site, page Page, funcMap template.FuncMap) (*template.Template, error) {
	parse := func() (*template.Template, error) {
		tmplPaths := getComponentTemplatePaths(ctx, page)
		if len(tmplPaths) < 1 {
			return nil, fmt.Errorf("error rendering %T: %w", page, ErrNoTemplatePath)
		}
		parsed, err := parseTemplates(site.TemplateDir(ctx), funcMap, tmplPaths...)
		if err != nil {
			return nil, fmt.Errorf("error parsing templates %v for page %T: %w", tmplPaths, page, err)
		}
		return parsed, nil
	}

	key := page.Key(ctx)
	if loader, ok := site.(TemplateLoader); ok {
		return loader.LoadTemplate(ctx, key, parse)
	}
	if cache, ok := site.(TemplateCacher); ok {
		if cached := cache.GetCachedTemplate(ctx, key); cached != nil {
			return cached, nil
		}
	}
	parsed, err := parse()
	if err != nil {
		return nil, err
	}
	if cache, ok := site.(TemplateCacher); ok {
		cache.SetCachedTemplate(ctx, key, parsed)
	}
	return parsed, nil
}

// getRecursiveComponents lists component and everything it uses, depth
// first. A Component used in more than one place is listed each time.
func getRecursiveComponents(ctx context.Context, component Component) []Component {
	results := []Component{component}

	if uses, ok := component.(ComponentUser); ok {
		for _, child := range uses.UseComponents(ctx) {
			results = append(results, getRecursiveComponents(ctx, child)...)
		}
	}
	return results
}

func getComponentTemplatePaths(ctx context.Context, component Component) []string {
	var results []string
	seen := map[string]struct{}{}
	for _, comp := range getRecursiveComponents(ctx, component) {
		for _, path := range comp.Templates(ctx) {
			if _, ok := seen[path]; ok {
				continue
			}
			results = append(results, path)
			seen[path] = struct{}{}
		}
	}
	return results
}

func getComponentFuncMap(ctx context.Context, site Site, component Component) template.FuncMap {
	results := template.FuncMap{}
	if fm, ok := site.(FuncMapExtender); ok {
		results = mergeFuncMaps(results, fm.FuncMap(ctx))
	}
	for _, comp := range getRecursiveComponents(ctx, component) {
		fm, ok := comp.(FuncMapExtender)
		if !ok {
			continue
		}
		results = mergeFuncMaps(results, fm.FuncMap(ctx))
	}
	return results
}

func parseTemplates(fsys fs.FS, funcs template.FuncMap, patterns ...string) (*template.Template, error) {
	var files []string
	for _, pattern := range patterns {
		list, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("error listing files for %q: %w", pattern, err)
		}
		if len(list) < 1 {
			return nil, fmt.Errorf("error parsing %q: %w", pattern, ErrTemplatePatternMatchesNoFiles)
		}
		files = append(files, list...)
	}
	if len(files) < 1 {
		return nil, ErrNoTemplatePath
	}
	tmpl := template.New("").Funcs(funcs)
	for _, file := range files {
		contents, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("error reading %q: %w", file, err)
		}
		if _, err := tmpl.New(file).Parse(string(contents)); err != nil {
			return nil, fmt.Errorf("error parsing %q: %w", file, err)
		}
	}
	return tmpl, nil
}

// mergeFuncMaps flattens two FuncMaps into one, with the values in `page`
// overriding the values in `in` if they have the same keys.
func mergeFuncMaps(in template.FuncMap, page template.FuncMap) template.FuncMap {
	res := template.FuncMap{}
	for k, v := range in {
		res[k] = v
	}
	for k, v := range page {
		res[k] = v
	}
	return res
}
