package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barescript-org/barescript/pkg/runtime"
	"github.com/barescript-org/barescript/pkg/script"
)

func init() {
	runtime.RegisterBuiltins()
}

// mapLoader serves script text from a map keyed by resolved location
func mapLoader(sources map[string]string) Loader {
	return func(location string) (string, error) {
		if text, ok := sources[filepath.ToSlash(location)]; ok {
			return text, nil
		}
		return "", assert.AnError
	}
}

// resolveSource parses and resolves a script with canned include sources
func resolveSource(t *testing.T, source, base, systemRoot string, sources map[string]string) (*script.Script, error) {
	t.Helper()
	parsed, err := script.ParseScript(source)
	require.NoError(t, err)

	resolver := NewIncludeResolver(systemRoot)
	resolver.Loader = mapLoader(sources)
	return resolver.Resolve(parsed, base)
}

func TestResolve_SplicesIncludedStatements(t *testing.T) {
	resolved, err := resolveSource(t,
		"include 'util.bare'\nreturn triple(2)",
		"scripts/main.bare", "lib",
		map[string]string{
			"scripts/util.bare": "function triple(n):\n    return 3 * n\nendfunction",
		})
	require.NoError(t, err)

	// The include statement is gone, replaced by the included function
	for _, stmt := range resolved.Statements {
		_, isInclude := stmt.(*script.IncludeStatement)
		assert.False(t, isInclude)
	}

	got, err := script.Execute(resolved, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 6.0, got.AsNumber())
}

func TestResolve_SystemIncludesUseLibraryRoot(t *testing.T) {
	resolved, err := resolveSource(t,
		"include <report.bare>\nreturn banner",
		"scripts/main.bare", "lib",
		map[string]string{
			"lib/report.bare": "banner = 'ready'",
		})
	require.NoError(t, err)

	got, err := script.Execute(resolved, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "ready", got.AsString())
}

func TestResolve_DeduplicatesByLocation(t *testing.T) {
	// Both the main script and the helper include shared.bare; it must be
	// spliced only once
	resolved, err := resolveSource(t,
		"include 'shared.bare'\ninclude 'helper.bare'\nreturn hits",
		"scripts/main.bare", "",
		map[string]string{
			"scripts/shared.bare": "hits = if(hits == null, 1, hits + 1)",
			"scripts/helper.bare": "include 'shared.bare'",
		})
	require.NoError(t, err)

	count := 0
	for _, stmt := range resolved.Statements {
		if expr, ok := stmt.(*script.ExprStatement); ok && expr.Name == "hits" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestResolve_NestedIncludesResolveRelatively(t *testing.T) {
	resolved, err := resolveSource(t,
		"include 'sub/a.bare'\nreturn value",
		"scripts/main.bare", "",
		map[string]string{
			"scripts/sub/a.bare": "include 'b.bare'",
			"scripts/sub/b.bare": "value = 'nested'",
		})
	require.NoError(t, err)

	got, err := script.Execute(resolved, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "nested", got.AsString())
}

func TestResolve_CircularIncludeFails(t *testing.T) {
	_, err := resolveSource(t,
		"include 'a.bare'",
		"scripts/main.bare", "",
		map[string]string{
			"scripts/a.bare": "include 'b.bare'",
			"scripts/b.bare": "include 'a.bare'",
		})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circular include")
}

func TestResolve_MissingIncludeFails(t *testing.T) {
	_, err := resolveSource(t,
		"include 'absent.bare'",
		"scripts/main.bare", "",
		nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.bare")
}

func TestResolve_ParseErrorInIncludePropagates(t *testing.T) {
	_, err := resolveSource(t,
		"include 'broken.bare'",
		"scripts/main.bare", "",
		map[string]string{
			"scripts/broken.bare": "x = $",
		})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.bare")
}

func TestJoinURL(t *testing.T) {
	assert.Equal(t, "http://host/a/c.bare", joinURL("http://host/a/b.bare", "c.bare"))
	assert.Equal(t, "http://other/x.bare", joinURL("http://host/a/b.bare", "http://other/x.bare"))
}
