package main

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRunFormats(t *testing.T) {
	tests := []struct {
		format   string
		expected string
	}{
		{"sexp", "New(Call(GetConstField(a, b), []))\n"},
		{"source", "new a.b()\n"},
		{"json", `{"input":"-e","sexp":"New(Call(GetConstField(a, b), []))","source":"new a.b()"}` + "\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		err := run(&buf, ioutil.Discard, input{name: "-e", source: "new a.b"}, options{Format: tt.format}, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, tt.expected, buf.String(), "format: %s", tt.format)
	}
}

func TestRunReportsParseErrors(t *testing.T) {
	var buf bytes.Buffer
	err := run(&buf, ioutil.Discard, input{name: "expr.js", source: "super.#x"}, options{Format: "sexp"}, zap.NewNop())
	require.Error(t, err)
	assert.Equal(t, "expr.js: parse error at 1:7: unexpected private identifier", err.Error())
	assert.Empty(t, buf.String())
}

func TestRunJSONError(t *testing.T) {
	var buf bytes.Buffer
	err := run(&buf, ioutil.Discard, input{name: "-e", source: "a.("}, options{Format: "json"}, zap.NewNop())
	require.Error(t, err)

	var r record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &r))
	require.NotNil(t, r.Error)
	assert.Equal(t, "unexpected token", r.Error.Kind)
	assert.Equal(t, 1, r.Error.Line)
	assert.Equal(t, 3, r.Error.Column)
}

func TestRunHonorsParserOptions(t *testing.T) {
	var buf bytes.Buffer
	err := run(&buf, ioutil.Discard, input{name: "-e", source: "yield x"}, options{Format: "sexp", Yield: true}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "Yield(x)\n", buf.String())

	err = run(&buf, ioutil.Discard, input{name: "-e", source: "((a))"}, options{Format: "sexp", MaxDepth: 6}, zap.NewNop())
	assert.Error(t, err)

	err = run(&buf, ioutil.Discard, input{name: "-e", source: "a.#x"}, options{Format: "sexp", ClassScope: true}, zap.NewNop())
	assert.Error(t, err)
}

func TestRunKeepsTraceOutOfRecords(t *testing.T) {
	var out, trace bytes.Buffer
	err := run(&out, &trace, input{name: "-e", source: "a.b"}, options{Format: "json", Trace: true}, zap.NewNop())
	require.NoError(t, err)

	var r record
	require.NoError(t, json.Unmarshal(out.Bytes(), &r))
	assert.Equal(t, "GetConstField(a, b)", r.Sexp)
	assert.Contains(t, trace.String(), "MemberExpression")
}

func TestReadInputs(t *testing.T) {
	dir, err := ioutil.TempDir("", "jsfront")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "expr.js")
	require.NoError(t, ioutil.WriteFile(path, []byte("a.b"), 0644))

	inputs, err := readInputs(options{Expr: "x", Files: []string{path}})
	require.NoError(t, err)
	assert.Equal(t, []input{{name: "-e", source: "x"}, {name: path, source: "a.b"}}, inputs)

	_, err = readInputs(options{Files: []string{filepath.Join(dir, "missing.js")}})
	assert.Error(t, err)
}
