// Package testutil holds helpers shared by fractal tests.
package testutil

import (
	"runtime"
	"testing"

	"github.com/adrg/xdg"
	"github.com/sebdah/goldie/v2"

	"github.com/ayoisaiah/fractal/internal/osutil"
)

// CompareGoldenFile verifies that output matches testdata/<name>.golden.
// Run the tests with -update to rewrite the golden files.
func CompareGoldenFile(t *testing.T, name string, output []byte) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		// TODO: normalise CRLF line endings in the golden files
		t.Skip("skipping golden file test in Windows")
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir("testdata"),
	)

	g.Assert(t, name, output)
}

// IsolateXDG points the XDG base directories at temporary directories for
// the duration of the test.
func IsolateXDG(t *testing.T) {
	t.Helper()

	t.Cleanup(xdg.Reload)

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("FRACTAL_ENV", "")

	xdg.Reload()
}
