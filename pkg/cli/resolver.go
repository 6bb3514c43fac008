// resolver.go - Include resolution for script execution hosts
//
// The parser records include statements without resolving them; the host
// loads the included scripts and splices their statements in place before
// execution. This resolver loads from file paths and http(s) URLs, resolves
// user includes ('url') relative to the including script and system includes
// (<url>) against a library root, deduplicates by resolved location, and
// terminates circular inclusion chains with an error.
package cli

import (
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/barescript-org/barescript/pkg/script"
)

// Loader loads script text from a resolved location
type Loader func(location string) (string, error)

// IncludeResolver splices included scripts into a parsed script
type IncludeResolver struct {
	// SystemRoot is the search root for system includes (<url>)
	SystemRoot string

	// Loader loads script text. DefaultLoader is used when nil.
	Loader Loader

	loaded  map[string]bool
	loading map[string]bool
}

// NewIncludeResolver creates a resolver with the given system library root
func NewIncludeResolver(systemRoot string) *IncludeResolver {
	return &IncludeResolver{
		SystemRoot: systemRoot,
		loaded:     make(map[string]bool),
		loading:    make(map[string]bool),
	}
}

// Resolve returns a copy of the script with every include statement replaced
// by the parsed statements of the scripts it names. base is the location of
// the including script; relative user includes resolve against it.
func (r *IncludeResolver) Resolve(scr *script.Script, base string) (*script.Script, error) {
	statements, err := r.resolveStatements(scr.Statements, base)
	if err != nil {
		return nil, err
	}
	return &script.Script{Statements: statements}, nil
}

func (r *IncludeResolver) resolveStatements(stmts []script.Statement, base string) ([]script.Statement, error) {
	var resolved []script.Statement
	for _, stmt := range stmts {
		include, ok := stmt.(*script.IncludeStatement)
		if !ok {
			resolved = append(resolved, stmt)
			continue
		}
		for _, inc := range include.Includes {
			spliced, err := r.resolveInclude(inc, base)
			if err != nil {
				return nil, err
			}
			resolved = append(resolved, spliced...)
		}
	}
	return resolved, nil
}

// resolveInclude loads, parses, and recursively resolves one include
func (r *IncludeResolver) resolveInclude(inc script.Include, base string) ([]script.Statement, error) {
	location := r.resolveLocation(inc, base)

	// Deduplicate by resolved location; terminate circular chains
	if r.loaded[location] {
		return nil, nil
	}
	if r.loading[location] {
		return nil, errors.Errorf("circular include of %q", location)
	}
	r.loading[location] = true
	defer delete(r.loading, location)

	loader := r.Loader
	if loader == nil {
		loader = DefaultLoader
	}
	source, err := loader(location)
	if err != nil {
		return nil, errors.Wrapf(err, "include %q", location)
	}

	included, err := script.ParseScript(source)
	if err != nil {
		return nil, errors.Wrapf(err, "include %q", location)
	}

	statements, err := r.resolveStatements(included.Statements, location)
	if err != nil {
		return nil, err
	}
	r.loaded[location] = true
	return statements, nil
}

// resolveLocation computes the location an include names: system includes
// join the library root, user includes resolve relative to the including
// script
func (r *IncludeResolver) resolveLocation(inc script.Include, base string) string {
	if inc.System {
		if isURL(r.SystemRoot) {
			root := r.SystemRoot
			if !strings.HasSuffix(root, "/") {
				root += "/"
			}
			return joinURL(root, inc.URL)
		}
		return filepath.Join(r.SystemRoot, filepath.FromSlash(inc.URL))
	}
	if isURL(inc.URL) {
		return inc.URL
	}
	if isURL(base) {
		return joinURL(base, inc.URL)
	}
	return filepath.Join(filepath.Dir(base), filepath.FromSlash(inc.URL))
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http:") || strings.HasPrefix(s, "https:")
}

// joinURL resolves a reference against a base URL
func joinURL(base, ref string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}

// DefaultLoader loads http(s) URLs over the network and anything else from
// the filesystem
func DefaultLoader(location string) (string, error) {
	if isURL(location) {
		resp, err := http.Get(location)
		if err != nil {
			return "", err
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 400 {
			return "", errors.Errorf("fetching %q: status %s", location, resp.Status)
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", err
		}
		return string(body), nil
	}
	body, err := os.ReadFile(location)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
