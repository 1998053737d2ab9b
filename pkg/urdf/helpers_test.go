package urdf

import (
	"strings"
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// fakeFiles is a FileResolver backed by a fixed set of known files.
type fakeFiles struct {
	files map[string]bool
}

func (f fakeFiles) Resolve(dir, filename string) (string, bool) {
	path := dir + "/" + filename
	if f.files[path] {
		return path, true
	}
	return "", false
}

// meshFiles returns a resolver that knows the given paths, each joined
// under the test document directory "testdir".
func meshFiles(names ...string) fakeFiles {
	f := fakeFiles{files: make(map[string]bool)}
	for _, n := range names {
		f.files["testdir/"+n] = true
	}
	return f
}

// elem parses an XML snippet and returns its root element node.
func elem(t *testing.T, snippet string) *xmlquery.Node {
	t.Helper()
	doc, err := xmlquery.Parse(strings.NewReader(snippet))
	require.NoError(t, err)
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			return c
		}
	}
	t.Fatal("snippet has no element")
	return nil
}

// testParser returns a parse context with the given scale, logging to
// the test output and resolving meshes via the given resolver.
func testParser(t *testing.T, scale float64, files FileResolver) *parser {
	t.Helper()
	if files == nil {
		files = meshFiles()
	}
	return &parser{
		scale: scale,
		log:   zaptest.NewLogger(t),
		files: files,
		dir:   "testdir",
	}
}

// parseDoc runs the full document parse over a URDF string.
func parseDoc(t *testing.T, doc string, scale float64, files FileResolver) (*Model, error) {
	t.Helper()
	p := &Parser{Scale: scale, Log: zaptest.NewLogger(t), Files: files}
	if files == nil {
		p.Files = meshFiles()
	}
	return p.Parse(strings.NewReader(doc), "testdir/robot.urdf")
}

// mustParseDoc is parseDoc for documents the test requires to be valid.
func mustParseDoc(t *testing.T, doc string, scale float64, files FileResolver) *Model {
	t.Helper()
	model, err := parseDoc(t, doc, scale, files)
	require.NoError(t, err)
	require.NotNil(t, model)
	return model
}
