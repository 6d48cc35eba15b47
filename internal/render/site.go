package render

import (
	"context"
	"html/template"
	"io/fs"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Site is the singleton used to render HTML. It holds the configuration
// shared by every page and surfaces the templates Components rely on as an
// fs.FS.
type Site interface {
	// TemplateDir returns an fs.FS containing every template needed to
	// render every Page on the Site.
	//
	// Paths within the fs.FS match the output of Templates for
	// Components.
	TemplateDir(ctx context.Context) fs.FS
}

// TemplateCacher is an optional interface for Sites. Those fulfilling it
// cache parsed templates under the Key of each Page. The templates parsed
// for a given key must be the same every time; the data they're executed
// with may differ, so the output HTML cannot be cached this way.
type TemplateCacher interface {
	// GetCachedTemplate returns the *template.Template stored under key,
	// or nil if nothing has been cached yet.
	GetCachedTemplate(ctx context.Context, key string) *template.Template

	// SetCachedTemplate stores tmpl under key. It is best-effort and
	// does not surface errors.
	SetCachedTemplate(ctx context.Context, key string, tmpl *template.Template)
}

// TemplateLoader is an optional interface for Sites. Those fulfilling it
// take over the cache-or-parse decision for a key, so that concurrent
// renders of an uncached Page only parse its templates once. It takes
// precedence over TemplateCacher.
type TemplateLoader interface {
	LoadTemplate(ctx context.Context, key string, parse func() (*template.Template, error)) (*template.Template, error)
}

// ResourceCacher is an optional interface for Sites. Those fulfilling it
// cache the template source of inline CSS and JavaScript resources, keyed by
// template path.
type ResourceCacher interface {
	// GetCachedResource returns the source stored under key, or nil if
	// nothing has been cached yet.
	GetCachedResource(ctx context.Context, key string) *string

	// SetCachedResource stores resource under key. It is best-effort
	// and does not surface errors.
	SetCachedResource(ctx context.Context, key, resource string)
}

// ServerErrorPager is an optional interface for Sites. If a Site implements
// it and Render fails, the output of ServerErrorPage is rendered instead.
type ServerErrorPager interface {
	ServerErrorPage(ctx context.Context) Page
}

var (
	_ Site           = &CachedSite{}
	_ TemplateCacher = &CachedSite{}
	_ TemplateLoader = &CachedSite{}
	_ ResourceCacher = &CachedSite{}
)

// CachedSite is a Site implementation meant to be embedded in other Site
// implementations. It keeps parsed templates and resource sources in memory
// and exposes the template fs.FS passed to NewCachedSite. Its empty value is
// not usable.
type CachedSite struct {
	templateCache   map[string]*template.Template
	templateCacheMu sync.RWMutex
	// generation counts Resets, guarded by templateCacheMu. Parses
	// started before a Reset must not fill the emptied cache.
	generation uint64

	resourceCache   map[string]string
	resourceCacheMu sync.RWMutex

	parses singleflight.Group

	templateDir fs.FS
}

// NewCachedSite returns a CachedSite that serves templates from templates.
func NewCachedSite(templates fs.FS) *CachedSite {
	return &CachedSite{
		templateCache: map[string]*template.Template{},
		resourceCache: map[string]string{},
		templateDir:   templates,
	}
}

// GetCachedTemplate returns the template cached under key, or nil.
//
// It can safely be used by multiple goroutines.
func (s *CachedSite) GetCachedTemplate(_ context.Context, key string) *template.Template {
	s.templateCacheMu.RLock()
	defer s.templateCacheMu.RUnlock()
	return s.templateCache[key]
}

// SetCachedTemplate caches tmpl under key.
//
// It can safely be used by multiple goroutines.
func (s *CachedSite) SetCachedTemplate(_ context.Context, key string, tmpl *template.Template) {
	s.templateCacheMu.Lock()
	defer s.templateCacheMu.Unlock()
	s.templateCache[key] = tmpl
}

// LoadTemplate returns the template cached under key. On a miss it calls
// parse, caches a successful result, and returns it. Concurrent misses for
// the same key share a single call to parse, unless Reset ran in between: a
// parse started before a Reset is neither joined by later callers nor
// cached.
func (s *CachedSite) LoadTemplate(_ context.Context, key string, parse func() (*template.Template, error)) (*template.Template, error) {
	s.templateCacheMu.RLock()
	tmpl, gen := s.templateCache[key], s.generation
	s.templateCacheMu.RUnlock()
	if tmpl != nil {
		return tmpl, nil
	}

	res, err, _ := s.parses.Do(strconv.FormatUint(gen, 10)+"/"+key, func() (any, error) {
		tmpl, err := parse()
		if err != nil {
			return nil, err
		}
		s.templateCacheMu.Lock()
		if s.generation == gen {
			s.templateCache[key] = tmpl
		}
		s.templateCacheMu.Unlock()
		return tmpl, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(*template.Template), nil
}

// GetCachedResource returns the resource cached under key, or nil.
//
// It can safely be used by multiple goroutines.
func (s *CachedSite) GetCachedResource(_ context.Context, key string) *string {
	s.resourceCacheMu.RLock()
	defer s.resourceCacheMu.RUnlock()
	res, ok := s.resourceCache[key]
	if !ok {
		return nil
	}
	return &res
}

// SetCachedResource caches resource under key.
//
// It can safely be used by multiple goroutines.
func (s *CachedSite) SetCachedResource(_ context.Context, key, resource string) {
	s.resourceCacheMu.Lock()
	defer s.resourceCacheMu.Unlock()
	s.resourceCache[key] = resource
}

// Reset drops every cached template and resource, so the next render
// re-reads them from the template fs.FS.
func (s *CachedSite) Reset(_ context.Context) {
	s.templateCacheMu.Lock()
	s.templateCache = map[string]*template.Template{}
	s.generation++
	s.templateCacheMu.Unlock()

	s.resourceCacheMu.Lock()
	s.resourceCache = map[string]string{}
	s.resourceCacheMu.Unlock()
}

// TemplateDir returns the fs.FS passed to NewCachedSite.
func (s *CachedSite) TemplateDir(_ context.Context) fs.FS {
	return s.templateDir
}
