// Command mksm writes a random sparse matrix and a dense vector in the binary
// layout read by the sparse matrix-vector multiplication benchmark.
//
//	mksm [options] <float|double> <cols> <rows> <ratio> <output>
//
// Usage errors exit with status 1 before anything is created. A failure
// during generation removes the partial output and also exits with 1.
package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	flags "github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mksm/encoder"
	"github.com/katalvlaran/mksm/sampler"
	"github.com/katalvlaran/mksm/sparse"
)

const (
	exitOK      = 0
	exitFailure = 1

	outputMode = 0o666
	bufferSize = 1 << 16
)

type options struct {
	Seed     int64  `long:"seed" description:"seed for a reproducible run (default: derived from the clock)"`
	Strategy string `long:"strategy" choice:"rejection" choice:"shuffle" choice:"auto" default:"rejection" description:"column index sampling strategy"`
	Clamp    bool   `long:"clamp" description:"cap row lengths at the column count instead of failing"`
	Order    string `long:"order" choice:"native" choice:"little" choice:"big" default:"native" description:"byte order of the output"`
	Verbose  bool   `short:"v" long:"verbose" description:"log every generation stage"`

	Args struct {
		Kind   kindArg `positional-arg-name:"kind" description:"element kind: float or double"`
		Cols   int     `positional-arg-name:"cols" description:"number of columns"`
		Rows   int     `positional-arg-name:"rows" description:"number of rows"`
		Ratio  float64 `positional-arg-name:"ratio" description:"density ratio; row lengths are drawn from [0, cols*2*ratio)"`
		Output string  `positional-arg-name:"output" description:"path of the file to write"`
	} `positional-args:"yes" required:"yes"`
}

// kindArg parses the element kind as go-flags reaches it, so a bad kind is
// reported before any of the numeric arguments are converted.
type kindArg encoder.Kind

func (k *kindArg) UnmarshalFlag(value string) error {
	kind, err := encoder.ParseKind(value)
	if err != nil {
		return err
	}
	*k = kindArg(kind)

	return nil
}

var byteOrders = map[string]binary.ByteOrder{
	"native": binary.NativeEndian,
	"little": binary.LittleEndian,
	"big":    binary.BigEndian,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return exitOK
		}
		if errors.Is(err, encoder.ErrUnknownKind) {
			fmt.Fprintln(stderr, "Invalid type")
			return exitFailure
		}
		fmt.Fprintf(stderr, "Invalid arguments: %v\n", err)
		return exitFailure
	}

	params := encoder.Params{
		Kind:  encoder.Kind(opts.Args.Kind),
		Shape: sparse.Shape{Rows: opts.Args.Rows, Cols: opts.Args.Cols, Ratio: opts.Args.Ratio},
	}
	if err := params.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid arguments: %v\n", err)
		return exitFailure
	}

	log := newLogger(stderr, opts.Verbose)
	encOpts, err := encoderOptions(parser, &opts, log)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid arguments: %v\n", err)
		return exitFailure
	}

	st, err := generate(opts.Args.Output, params, encOpts)
	if err != nil {
		log.WithError(err).WithField("output", opts.Args.Output).Error("generation failed")
		return exitFailure
	}

	fmt.Fprintf(stdout, "columns = %d; rows = %d; elements = %d (%d)\n", st.Cols, st.Rows, st.Nonzeros, st.ElemSize)
	fmt.Fprintf(stdout, "%f %f\n", st.MatrixSum, st.VectorSum)
	log.WithFields(logrus.Fields{
		"output": opts.Args.Output,
		"size":   humanize.IBytes(uint64(st.Bytes)),
		"seed":   st.Seed,
	}).Info("matrix written")

	return exitOK
}

func newLogger(out io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

func encoderOptions(parser *flags.Parser, opts *options, log logrus.FieldLogger) ([]encoder.Option, error) {
	strategy, err := sparse.ParseStrategy(opts.Strategy)
	if err != nil {
		return nil, err
	}

	s := sampler.New()
	if o := parser.FindOptionByLongName("seed"); o != nil && o.IsSet() {
		s = sampler.New(sampler.WithSeed(opts.Seed))
	}

	out := []encoder.Option{
		encoder.WithSampler(s),
		encoder.WithStrategy(strategy),
		encoder.WithByteOrder(byteOrders[opts.Order]),
		encoder.WithLogger(log),
	}
	if opts.Clamp {
		out = append(out, encoder.WithLengthPolicy(sparse.LengthClamp))
	}

	return out, nil
}

// generate creates path, streams the matrix into it and removes the file
// again if anything fails before it is fully flushed and closed.
func generate(path string, params encoder.Params, opts []encoder.Option) (st encoder.Stats, err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, outputMode)
	if err != nil {
		return st, errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(path)
		}
	}()

	w := bufio.NewWriterSize(f, bufferSize)
	if st, err = encoder.Encode(w, params, opts...); err != nil {
		return st, errors.Wrapf(err, "encode %s", path)
	}
	if err = w.Flush(); err != nil {
		return st, errors.Wrapf(err, "flush %s", path)
	}
	if err = f.Close(); err != nil {
		return st, errors.Wrapf(err, "close %s", path)
	}

	return st, nil
}
