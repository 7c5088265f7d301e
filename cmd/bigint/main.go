// Command bigint evaluates arithmetic on two arbitrary precision integers and
// prints the results as a table.
//
//	bigint [-op all|add|sub|mul|quo|cmp] [-binary] [-v] [--] A B
//
// Use -- before the operands when the first one is negative.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/markkurossi/tabulate"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/calebcase/bigint/integer"
)

// Error is the class of all errors returned by this command.
var Error = errs.Class("bigint")

var ops = []string{"add", "sub", "mul", "quo", "cmp"}

type config struct {
	op      string
	binary  bool
	verbose bool
	args    []string
}

func parseFlags(args []string) (cfg config, err error) {
	fs := flag.NewFlagSet("bigint", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.op, "op", "all", "operation: all, add, sub, mul, quo or cmp")
	fs.BoolVar(&cfg.binary, "binary", false, "print results in binary")
	fs.BoolVar(&cfg.verbose, "v", false, "verbose logging")

	err = fs.Parse(args)
	if err != nil {
		return cfg, Error.Wrap(err)
	}

	cfg.args = fs.Args()
	if len(cfg.args) != 2 {
		return cfg, Error.New("expected two operands, got %d", len(cfg.args))
	}

	if cfg.op != "all" {
		for _, op := range ops {
			if op == cfg.op {
				return cfg, nil
			}
		}

		return cfg, Error.New("unknown operation: %q", cfg.op)
	}

	return cfg, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return zc.Build(zap.AddStacktrace(zapcore.PanicLevel))
}

func format(x integer.Int, binary bool) string {
	if binary {
		return x.BinaryString()
	}

	return x.String()
}

func evaluate(op string, a, b integer.Int, binary bool) (string, error) {
	switch op {
	case "add":
		return format(a.Add(b), binary), nil
	case "sub":
		return format(a.Sub(b), binary), nil
	case "mul":
		return format(a.Mul(b), binary), nil
	case "quo":
		q, err := a.Quo(b)
		if err != nil {
			return "", err
		}

		return format(q, binary), nil
	case "cmp":
		switch a.Cmp(b) {
		case -1:
			return "<", nil
		case 1:
			return ">", nil
		}

		return "==", nil
	}

	return "", Error.New("unknown operation: %q", op)
}

func run(cfg config, w io.Writer, log *zap.Logger) (err error) {
	a, err := integer.Parse(cfg.args[0])
	if err != nil {
		return err
	}

	b, err := integer.Parse(cfg.args[1])
	if err != nil {
		return err
	}

	log.Debug("parsed operands",
		zap.Stringer("a", a),
		zap.Stringer("b", b),
		zap.String("op", cfg.op),
	)

	selected := ops
	if cfg.op != "all" {
		selected = []string{cfg.op}
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Op").SetAlign(tabulate.ML)
	tab.Header("Result").SetAlign(tabulate.MR)

	for _, op := range selected {
		result, err := evaluate(op, a, b, cfg.binary)
		if err != nil {
			return err
		}

		row := tab.Row()
		row.Column(op)
		row.Column(result)
	}

	tab.Print(w)

	return nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\nusage: bigint [-op all|%s] [-binary] [-v] A B\n",
			err, "add|sub|mul|quo|cmp")
		os.Exit(1)
	}

	log, err := newLogger(cfg.verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	err = run(cfg, os.Stdout, log)
	if err != nil {
		log.Error("evaluation failed", zap.Error(err))
		os.Exit(1)
	}
}
