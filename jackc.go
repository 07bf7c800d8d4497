// Package jackc compiles programs written in the Jack language into code for
// the Jack stack machine.
//
// A program is a set of classes, one per source unit. Each class compiles to
// its own instruction stream, independently of the others:
//
//	code, err := jackc.Compile(source, jackc.WithFilename("Main.jack"))
//
// CompileUnits compiles several classes in parallel and returns their code
// in the order the units were given.
package jackc

import (
	"context"
	"runtime"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/deepnoodle-ai/jackc/bytecode"
	"github.com/deepnoodle-ai/jackc/compiler"
	"github.com/deepnoodle-ai/jackc/trace"
)

// Option configures a compilation.
type Option func(*options)

type options struct {
	filename    string
	logger      zerolog.Logger
	tracer      trace.Tracer
	concurrency int
}

func collectOptions(opts ...Option) *options {
	o := &options{
		logger:      zerolog.Nop(),
		concurrency: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if o.concurrency < 1 {
		o.concurrency = 1
	}
	return o
}

func (o *options) compilerOpts() []compiler.Option {
	opts := []compiler.Option{compiler.WithLogger(o.logger)}
	if o.filename != "" {
		opts = append(opts, compiler.WithFilename(o.filename))
	}
	if o.tracer != nil {
		opts = append(opts, compiler.WithTracer(o.tracer))
	}
	return opts
}

// WithFilename sets the filename reported in errors.
func WithFilename(filename string) Option {
	return func(o *options) {
		o.filename = filename
	}
}

// WithLogger sets the logger that receives compiler debug events.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTracer sets a tracer that records the parse. It applies to Compile
// only. CompileUnits takes a tracer per Unit.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) {
		o.tracer = tracer
	}
}

// WithConcurrency limits the number of units CompileUnits compiles at the
// same time. The default is GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// Compile compiles the source text of one class. The returned Code is
// immutable and safe for concurrent use.
func Compile(source string, opts ...Option) (*bytecode.Code, error) {
	o := collectOptions(opts...)
	return compiler.Compile(source, o.compilerOpts()...)
}

// Unit is one class of a program.
type Unit struct {
	// Name identifies the unit in errors, usually its filename.
	Name string

	// Source is the text of the class.
	Source string

	// Tracer optionally records the parse of this unit.
	Tracer trace.Tracer
}

// CompileUnits compiles each unit with its own compiler and returns the
// resulting code in the order of units. Units share no state: a unit that
// fails to compile leaves a nil entry and does not affect the others. The
// returned error aggregates the failures of all units, in unit order.
//
// A unit that has not started when ctx is cancelled fails with the context
// error.
func CompileUnits(ctx context.Context, units []Unit, opts ...Option) ([]*bytecode.Code, error) {
	o := collectOptions(opts...)
	codes := make([]*bytecode.Code, len(units))
	errs := make([]error, len(units))

	var g errgroup.Group
	g.SetLimit(o.concurrency)
	for i, unit := range units {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			logger := o.logger.With().Str("unit", unit.Name).Logger()
			copts := []compiler.Option{
				compiler.WithFilename(unit.Name),
				compiler.WithLogger(logger),
			}
			if unit.Tracer != nil {
				copts = append(copts, compiler.WithTracer(unit.Tracer))
			}
			codes[i], errs[i] = compiler.Compile(unit.Source, copts...)
			return nil
		})
	}
	_ = g.Wait()

	var result *multierror.Error
	for _, err := range errs {
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	return codes, result.ErrorOrNil()
}
