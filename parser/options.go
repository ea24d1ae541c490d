package parser

import (
	"io"
	"os"

	"go.uber.org/zap"
)

// DefaultMaxDepth bounds nesting when Options.MaxDepth is zero.
const DefaultMaxDepth = 512

// Options configures a Parser.
type Options struct {
	AllowYield        bool        // AllowYield parses yield as an operator rather than an identifier
	AllowAwait        bool        // AllowAwait parses await as an operator rather than an identifier
	MaxDepth          int         // MaxDepth bounds recursion; 0 means DefaultMaxDepth, negative disables the check
	RequireClassScope bool        // RequireClassScope rejects private names used outside a class body
	Trace             bool        // Trace prints the productions entered to TraceWriter
	TraceWriter       io.Writer   // TraceWriter receives tracing output, os.Stdout if nil
	Logger            *zap.Logger // Logger receives debug events, a no-op logger if nil
}

func (o Options) withDefaults() Options {
	if o.MaxDepth == 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.TraceWriter == nil {
		o.TraceWriter = os.Stdout
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}
