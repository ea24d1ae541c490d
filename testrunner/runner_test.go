package testrunner

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorpus(t *testing.T) {
	results, summary, err := Run(Config{Dir: "testdata"})
	require.NoError(t, err)

	for _, r := range results {
		if r.Result == Fail || r.Result == Error {
			t.Errorf("%s %s: %s", r.Result, r.Path, r.Message)
		}
	}
	assert.Equal(t, len(results), summary.Total)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, summary.Total-1, summary.Passed)
}

func TestRunFilterAndLimit(t *testing.T) {
	results, summary, err := Run(Config{Dir: "testdata", Filter: "super"})
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.Contains(t, r.Path, "super")
	}
	assert.Equal(t, len(results), summary.Total)

	results, _, err = Run(Config{Dir: "testdata", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestRunReportsFailures(t *testing.T) {
	dir, err := ioutil.TempDir("", "fixtures")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	write := func(name, content string) {
		require.NoError(t, ioutil.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	write("wrong-tree.js", "/*---\nexpected: 'GetField(a, b)'\n---*/\na.b\n")
	write("should-fail.js", "/*---\nnegative:\n  phase: parse\n  type: General\n---*/\na.b\n")
	write("wrong-kind.js", "/*---\nnegative:\n  phase: parse\n  type: General\n---*/\na.\n")
	write("bad-yaml.js", "/*---\nflags: [\n---*/\na\n")
	write("no-front-matter.js", "a[b]\n")

	var out bytes.Buffer
	results, summary, err := Run(Config{Dir: dir, Verbose: true, Out: &out})
	require.NoError(t, err)

	byPath := make(map[string]TestResult)
	for _, r := range results {
		byPath[r.Path] = r
	}
	assert.Equal(t, Error, byPath["bad-yaml.js"].Result)
	assert.Equal(t, Pass, byPath["no-front-matter.js"].Result)
	assert.Equal(t, Fail, byPath["should-fail.js"].Result)
	assert.Equal(t, Fail, byPath["wrong-kind.js"].Result)
	assert.Equal(t, Fail, byPath["wrong-tree.js"].Result)
	assert.Contains(t, byPath["wrong-tree.js"].Message, "got GetConstField(a, b)")

	assert.Equal(t, 5, summary.Total)
	assert.Equal(t, 1, summary.Passed)
	assert.Equal(t, 3, summary.Failed)
	assert.Equal(t, 1, summary.Errors)
	assert.Contains(t, out.String(), "FAIL wrong-tree.js")
}

func TestRunMissingDir(t *testing.T) {
	_, _, err := Run(Config{Dir: filepath.Join("testdata", "missing")})
	assert.Error(t, err)
}

func TestParseMetadata(t *testing.T) {
	source := `/*---
description: nested new
flags: [yield, class-body]
private:
  - a
  - b
maxDepth: 40
negative:
  phase: parse
  type: DepthExceeded
---*/
new new Foo
`
	meta, err := parseMetadata(source)
	require.NoError(t, err)
	assert.Equal(t, TestMetadata{
		Description: "nested new",
		Flags:       []string{"yield", "class-body"},
		Private:     []string{"a", "b"},
		MaxDepth:    40,
		Negative:    NegativeExpectation{Phase: "parse", Type: "DepthExceeded"},
	}, meta)

	_, err = parseMetadata("/*--- description: open\nnew Foo")
	assert.Error(t, err)
}
