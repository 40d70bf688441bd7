// Package templates provides a template engine over a filesystem,
// implementing the render collaborator interface consumed by
// template-deferred Turbo responses: it resolves the first existing name
// among ordered candidates, parses templates on demand with a cache, and
// executes them against the supplied render data.
package templates

import (
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"path"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dgraph-io/ristretto"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"

	"github.com/sargassum-world/turboresponse/responding"
)

// DefaultPattern matches the template files an Engine will resolve when no
// pattern is given.
const DefaultPattern = "**/*.tmpl"

// Engine renders templates from a filesystem. It implements
// [responding.TemplateRenderer].
type Engine struct {
	fsys    fs.FS
	pattern string
	funcs   template.FuncMap
	parsed  *ristretto.Cache
	group   singleflight.Group
}

// NewEngine creates an Engine over the filesystem. Only files matching the
// doublestar pattern are resolvable as templates; an empty pattern means
// [DefaultPattern]. The function map is shared by all templates.
func NewEngine(fsys fs.FS, pattern string, funcs template.FuncMap) (*Engine, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, errors.Errorf("invalid template pattern %s", pattern)
	}

	const (
		maxCached   = 1 << 10
		numCounters = 10 * maxCached
		bufferItems = 64
	)
	parsed, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCached,
		BufferItems: bufferItems,
	})
	if err != nil {
		return nil, errors.Wrap(err, "couldn't make parsed-template cache")
	}

	return &Engine{
		fsys:    fsys,
		pattern: pattern,
		funcs:   funcs,
		parsed:  parsed,
	}, nil
}

// Templates lists the template names resolvable by the engine.
func (e *Engine) Templates() ([]string, error) {
	names, err := doublestar.Glob(e.fsys, e.pattern)
	return names, errors.Wrapf(err, "couldn't list templates matching %s", e.pattern)
}

// Render resolves the first existing name among the ordered candidates and
// executes it against the data, writing the result to w. The request is
// accepted for interface compatibility; templates here don't depend on it.
func (e *Engine) Render(
	w io.Writer, names []string, data responding.Data, _ *http.Request,
) error {
	name, err := e.resolve(names)
	if err != nil {
		return err
	}
	tmpl, err := e.load(name)
	if err != nil {
		return err
	}
	return errors.Wrapf(tmpl.Execute(w, data), "couldn't execute template %s", name)
}

func (e *Engine) resolve(names []string) (string, error) {
	for _, name := range names {
		matched, err := doublestar.Match(e.pattern, name)
		if err != nil {
			return "", errors.Wrapf(err, "couldn't match template name %s", name)
		}
		if !matched {
			continue
		}
		if _, err := fs.Stat(e.fsys, name); err == nil {
			return name, nil
		}
	}
	return "", errors.Errorf("no template found among candidates %v", names)
}

// load returns the parsed template for the name, parsing it at most once
// concurrently and caching the result.
func (e *Engine) load(name string) (*template.Template, error) {
	if cached, ok := e.parsed.Get(name); ok {
		return cached.(*template.Template), nil
	}

	parsed, err, _ := e.group.Do(name, func() (interface{}, error) {
		tmpl, err := template.New(path.Base(name)).Funcs(e.funcs).ParseFS(e.fsys, name)
		if err != nil {
			return nil, errors.Wrapf(err, "couldn't parse template %s", name)
		}
		e.parsed.Set(name, tmpl, 1)
		return tmpl, nil
	})
	if err != nil {
		return nil, err
	}
	return parsed.(*template.Template), nil
}
