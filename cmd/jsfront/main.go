package main

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	arg "github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/example/jsfront/ast"
	"github.com/example/jsfront/interner"
	"github.com/example/jsfront/parser"
)

type options struct {
	Expr       string   `arg:"-e,help:parse this expression"`
	Files      []string `arg:"positional,help:files holding one expression each"`
	Format     string   `arg:"-f,help:output format (sexp|source|json)"`
	Yield      bool     `arg:"help:parse yield as an operator"`
	Await      bool     `arg:"help:parse await as an operator"`
	ClassScope bool     `arg:"--class-scope,help:reject private names used outside a class body"`
	MaxDepth   int      `arg:"--max-depth,env:JSFRONT_MAX_DEPTH,help:nesting limit (0 for the default and negative for none)"`
	Trace      bool     `arg:"help:print the productions entered while parsing"`
	Verbose    bool     `arg:"-v,help:log parser debug events"`
}

type input struct {
	name   string
	source string
}

// record is one line of json output.
type record struct {
	Input  string       `json:"input"`
	Sexp   string       `json:"sexp,omitempty"`
	Source string       `json:"source,omitempty"`
	Error  *errorRecord `json:"error,omitempty"`
}

type errorRecord struct {
	Kind    string `json:"kind"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Message string `json:"message"`
}

func main() {
	opts := options{Format: "sexp"}
	p := arg.MustParse(&opts)
	if opts.Expr == "" && len(opts.Files) == 0 {
		p.Fail("pass an expression with -e or at least one file")
	}
	switch opts.Format {
	case "sexp", "source", "json":
	default:
		p.Fail(fmt.Sprintf("unknown format %q", opts.Format))
	}

	logger, err := newLogger(opts.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	inputs, err := readInputs(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	failed := false
	for _, in := range inputs {
		if err := run(os.Stdout, os.Stderr, in, opts, logger); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func readInputs(opts options) ([]input, error) {
	var inputs []input
	if opts.Expr != "" {
		inputs = append(inputs, input{name: "-e", source: opts.Expr})
	}
	for _, filename := range opts.Files {
		data, err := ioutil.ReadFile(filename)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", filename)
		}
		inputs = append(inputs, input{name: filename, source: string(data)})
	}
	return inputs, nil
}

// run parses one input and writes it to w in the requested format, sending
// any trace to trace. Parse errors are returned wrapped with the input name;
// in json format they are also written as a record.
func run(w, trace io.Writer, in input, opts options, logger *zap.Logger) error {
	syms := interner.New()
	expr, err := parser.ParseExpression(in.source, syms, parser.Options{
		AllowYield:        opts.Yield,
		AllowAwait:        opts.Await,
		MaxDepth:          opts.MaxDepth,
		RequireClassScope: opts.ClassScope,
		Trace:             opts.Trace,
		TraceWriter:       trace,
		Logger:            logger.With(zap.String("input", in.name)),
	})
	if err != nil {
		err = errors.Wrapf(err, "%s", in.name)
		if opts.Format == "json" {
			if encErr := writeRecord(w, record{Input: in.name, Error: newErrorRecord(err)}); encErr != nil {
				return encErr
			}
		}
		return err
	}

	switch opts.Format {
	case "source":
		_, err = fmt.Fprintln(w, ast.Print(expr, syms))
	case "json":
		err = writeRecord(w, record{Input: in.name, Sexp: ast.Sexp(expr, syms), Source: ast.Print(expr, syms)})
	default:
		_, err = fmt.Fprintln(w, ast.Sexp(expr, syms))
	}
	return errors.WithStack(err)
}

func newErrorRecord(err error) *errorRecord {
	perr, ok := parser.AsError(err)
	if !ok {
		return &errorRecord{Kind: "io", Message: err.Error()}
	}
	pos := perr.Position
	if perr.Kind == parser.Unexpected {
		pos = perr.Span.Start
	}
	return &errorRecord{
		Kind:    perr.Kind.String(),
		Line:    pos.Line,
		Column:  pos.Column,
		Message: perr.Error(),
	}
}

func writeRecord(w io.Writer, r record) error {
	enc := json.NewEncoder(w)
	return errors.Wrap(enc.Encode(r), "encoding record")
}
