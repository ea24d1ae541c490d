package testrunner

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"github.com/example/jsfront/ast"
	"github.com/example/jsfront/interner"
	"github.com/example/jsfront/parser"
)

type Result int

const (
	Pass Result = iota
	Fail
	Skip
	Error
)

func (r Result) String() string {
	switch r {
	case Pass:
		return "PASS"
	case Fail:
		return "FAIL"
	case Skip:
		return "SKIP"
	case Error:
		return "ERROR"
	}
	return "UNKNOWN"
}

type TestResult struct {
	Path    string
	Result  Result
	Message string
	Elapsed time.Duration
}

type Summary struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
	Errors  int
	Elapsed time.Duration
}

// DefaultTimeout bounds a single fixture when Config.Timeout is zero.
const DefaultTimeout = 5 * time.Second

type Config struct {
	Dir     string
	Filter  string
	Limit   int
	Timeout time.Duration
	Verbose bool
	Out     io.Writer   // receives verbose output, os.Stdout if nil
	Logger  *zap.Logger // passed on to the parser, a no-op logger if nil
}

// Run discovers the fixtures under cfg.Dir and runs them in path order.
func Run(cfg Config) ([]TestResult, Summary, error) {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	var testFiles []string
	err := filepath.Walk(cfg.Dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, ".js") {
			return nil
		}
		if cfg.Filter != "" {
			rel, _ := filepath.Rel(cfg.Dir, path)
			if !strings.Contains(rel, cfg.Filter) {
				return nil
			}
		}
		testFiles = append(testFiles, path)
		return nil
	})
	if err != nil {
		return nil, Summary{}, errors.Wrapf(err, "walking %s", cfg.Dir)
	}

	if cfg.Limit > 0 && len(testFiles) > cfg.Limit {
		testFiles = testFiles[:cfg.Limit]
	}

	start := time.Now()
	var results []TestResult
	var summary Summary
	summary.Total = len(testFiles)

	for _, path := range testFiles {
		rel, _ := filepath.Rel(cfg.Dir, path)
		tr := runSingleTest(path, rel, cfg)
		results = append(results, tr)

		switch tr.Result {
		case Pass:
			summary.Passed++
		case Fail:
			summary.Failed++
		case Skip:
			summary.Skipped++
		case Error:
			summary.Errors++
		}

		if cfg.Verbose {
			msg := ""
			if tr.Message != "" {
				msg = " " + tr.Message
			}
			fmt.Fprintf(cfg.Out, "%s %s%s\n", tr.Result, rel, msg)
		}
	}

	summary.Elapsed = time.Since(start)
	return results, summary, nil
}

func runSingleTest(path, rel string, cfg Config) TestResult {
	source, err := ioutil.ReadFile(path)
	if err != nil {
		return TestResult{Path: rel, Result: Error, Message: "read error: " + err.Error()}
	}

	meta, err := parseMetadata(string(source))
	if err != nil {
		return TestResult{Path: rel, Result: Error, Message: err.Error()}
	}

	for _, feat := range meta.Features {
		if isUnsupportedFeature(feat) {
			return TestResult{Path: rel, Result: Skip, Message: "unsupported feature: " + feat}
		}
	}

	start := time.Now()
	resultCh := make(chan parseResult, 1)
	go func() {
		resultCh <- parseFixture(string(source), meta, cfg.Logger.With(zap.String("fixture", rel)))
	}()

	var res parseResult
	select {
	case res = <-resultCh:
	case <-time.After(cfg.Timeout):
		return TestResult{
			Path:    rel,
			Result:  Error,
			Message: fmt.Sprintf("timeout (%s)", cfg.Timeout),
			Elapsed: time.Since(start),
		}
	}
	elapsed := time.Since(start)

	if msg := check(res, meta); msg != "" {
		return TestResult{Path: rel, Result: Fail, Message: msg, Elapsed: elapsed}
	}
	return TestResult{Path: rel, Result: Pass, Elapsed: elapsed}
}

type parseResult struct {
	sexp      string
	roundTrip string
	private   []string
	err       error
}

// parseFixture parses the whole fixture. The front matter is a block comment
// and is skipped by the lexer, so error positions match the file.
func parseFixture(source string, meta TestMetadata, logger *zap.Logger) parseResult {
	opts := parser.Options{MaxDepth: meta.MaxDepth, Logger: logger}
	classBody := false
	for _, flag := range meta.Flags {
		switch flag {
		case "yield":
			opts.AllowYield = true
		case "await":
			opts.AllowAwait = true
		case "class-scope":
			opts.RequireClassScope = true
		case "class-body":
			opts.RequireClassScope = true
			classBody = true
		}
	}

	syms := interner.New()
	p := parser.New(source, syms, opts)
	if classBody {
		p.Cursor().PushPrivateEnvironment()
	}
	expr, err := p.ParseExpression()
	if err != nil {
		return parseResult{err: err}
	}

	var private []string
	for sym := range p.Cursor().UsedPrivateIdentifiers() {
		private = append(private, syms.Resolve(sym))
	}
	sort.Strings(private)

	res := parseResult{sexp: ast.Sexp(expr, syms), private: private}
	printed := ast.Print(expr, syms)
	reparse := opts
	reparse.RequireClassScope = false
	again, err := parser.ParseExpression(printed, syms, reparse)
	if err != nil {
		res.err = errors.Wrapf(err, "re-parsing %q", printed)
		return res
	}
	res.roundTrip = ast.Sexp(again, syms)
	return res
}

var errorKinds = map[string]parser.ErrorKind{
	"AbruptEnd":     parser.AbruptEnd,
	"Unexpected":    parser.Unexpected,
	"General":       parser.General,
	"DepthExceeded": parser.DepthExceeded,
}

// check compares a parse against the fixture's expectations and describes the
// first mismatch, or returns "" when there is none.
func check(res parseResult, meta TestMetadata) string {
	if meta.Negative.Phase != "" {
		if res.err == nil || res.sexp != "" {
			return fmt.Sprintf("expected %s error in %s phase, got %s", meta.Negative.Type, meta.Negative.Phase, res.sexp)
		}
		perr, ok := parser.AsError(res.err)
		if !ok {
			return "unexpected error: " + res.err.Error()
		}
		if meta.Negative.Type != "" {
			kind, known := errorKinds[meta.Negative.Type]
			if !known {
				return "unknown error type " + meta.Negative.Type
			}
			if perr.Kind != kind {
				return fmt.Sprintf("expected %s error, got %s", meta.Negative.Type, res.err)
			}
		}
		if !strings.Contains(perr.Error(), meta.Negative.Message) {
			return fmt.Sprintf("expected message containing %q, got %q", meta.Negative.Message, perr.Error())
		}
		return ""
	}

	if res.err != nil {
		return res.err.Error()
	}
	if meta.Expected != "" && res.sexp != meta.Expected {
		return fmt.Sprintf("expected %s, got %s", meta.Expected, res.sexp)
	}
	if res.roundTrip != res.sexp {
		return fmt.Sprintf("round trip changed %s into %s", res.sexp, res.roundTrip)
	}
	if meta.Private != nil {
		want := append([]string(nil), meta.Private...)
		sort.Strings(want)
		if strings.Join(want, ",") != strings.Join(res.private, ",") {
			return fmt.Sprintf("expected private names %v, got %v", want, res.private)
		}
	}
	return ""
}

// TestMetadata is the YAML front matter of a fixture.
type TestMetadata struct {
	Description string              `yaml:"description"`
	Features    []string            `yaml:"features"`
	Flags       []string            `yaml:"flags"`
	MaxDepth    int                 `yaml:"maxDepth"`
	Expected    string              `yaml:"expected"`
	Private     []string            `yaml:"private"`
	Negative    NegativeExpectation `yaml:"negative"`
}

type NegativeExpectation struct {
	Phase   string `yaml:"phase"`   // only "parse" is meaningful here
	Type    string `yaml:"type"`    // an ErrorKind name such as "General"
	Message string `yaml:"message"` // substring of the rendered error
}

// parseMetadata decodes the front matter between /*--- and ---*/. A fixture
// without front matter has empty metadata.
func parseMetadata(source string) (TestMetadata, error) {
	var meta TestMetadata

	startIdx := strings.Index(source, "/*---")
	if startIdx < 0 {
		return meta, nil
	}
	endIdx := strings.Index(source[startIdx:], "---*/")
	if endIdx < 0 {
		return meta, errors.New("unterminated front matter")
	}

	frontMatter := source[startIdx+5 : startIdx+endIdx]
	if err := yaml.Unmarshal([]byte(frontMatter), &meta); err != nil {
		return meta, errors.Wrap(err, "decoding front matter")
	}
	return meta, nil
}

func isUnsupportedFeature(feat string) bool {
	unsupported := map[string]bool{
		"destructuring-assignment": true,
		"arrow-parameter-list":     true,
		"arrow-block-body":         true,
		"async-arrow-function":     true,
		"function-expression":      true,
		"class-expression":         true,
		"regexp-validation":        true,
		"import-call":              true,
		"import.meta":              true,
	}
	return unsupported[feat]
}
