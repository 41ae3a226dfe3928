// Command pratt scans, renders, evaluates, and inverts expressions.
//
// Expressions are taken from the arguments or, when there are none, one per
// line of standard input. The grammar is the arith grammar unless --grammar
// names a TOML grammar file.
package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/pratt"
	"github.com/zephyrtronium/pratt/arith"
	"github.com/zephyrtronium/pratt/grammarfile"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

// options holds the flags shared by every subcommand.
type options struct {
	grammar string
	typ     string
	prec    uint
	given   []string
	verbose bool
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "pratt",
		Short: "Parse and evaluate expressions",
		Long: "Parse and evaluate expressions given as arguments or, when there are none,\n" +
			"one per line of standard input.\n\n" +
			"Expressions that begin with - must follow --, as in:\n\n" +
			"\tpratt eval -- -x+1",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				pterm.EnableDebugMessages()
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&opts.grammar, "grammar", "g", "", "TOML grammar file (default arithmetic)")
	cmd.PersistentFlags().StringVarP(&opts.typ, "type", "t", "float", "evaluation type: float or decimal")
	cmd.PersistentFlags().UintVarP(&opts.prec, "prec", "p", 64, "precision of decimal calculations in bits")
	cmd.PersistentFlags().StringArrayVar(&opts.given, "given", nil, "name=value global definition (any number of times)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "print parse trees and compiled text")

	cmd.AddCommand(newTokensCmd(&opts))
	cmd.AddCommand(newRenderCmd(&opts))
	cmd.AddCommand(newEvalCmd(&opts))
	cmd.AddCommand(newCompileCmd(&opts))
	cmd.AddCommand(newInvertCmd(&opts))
	return cmd
}

// env is the grammar, evaluator, and globals built from the shared flags.
type env struct {
	g       *pratt.Grammar
	ev      *pratt.Evaluator
	globals map[string]interface{}
}

func (o *options) env() (*env, error) {
	g := arith.Grammar()
	if o.grammar != "" {
		var err error
		g, err = grammarfile.Load(o.grammar)
		if err != nil {
			return nil, err
		}
	}
	var (
		types   pratt.Types
		globals = make(map[string]interface{})
	)
	switch o.typ {
	case "float":
		types = arith.FloatTypes()
	case "decimal":
		if o.prec == 0 {
			return nil, errors.New("precision must be positive")
		}
		types = arith.DecimalTypes(o.prec)
		for k, v := range arith.DecimalConstants(o.prec) {
			globals[k] = v
		}
	default:
		return nil, errors.Errorf("unknown evaluation type %q", o.typ)
	}
	e := &env{g: g, ev: pratt.NewEvaluator(g, types), globals: globals}
	var result *multierror.Error
	for _, d := range o.given {
		name, v, err := e.define(d)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		e.globals[name] = v
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	pterm.Debug.Printfln("globals: %v", sortedNames(e.globals))
	return e, nil
}

// define evaluates a name=value definition. Definitions may use the globals
// defined before them.
func (e *env) define(d string) (string, interface{}, error) {
	k := strings.IndexByte(d, '=')
	if k < 0 {
		return "", nil, errors.Errorf(`definitions must be "name=value", not %q`, d)
	}
	name, src := strings.TrimSpace(d[:k]), strings.TrimSpace(d[k+1:])
	if name == "" {
		return "", nil, errors.Errorf("definition %q has no name", d)
	}
	n, err := e.g.Parse(src)
	if err != nil {
		return "", nil, errors.Wrapf(err, "defining %s", name)
	}
	v, err := e.ev.Eval(n, e.globals, nil)
	if err != nil {
		return "", nil, errors.Wrapf(err, "defining %s", name)
	}
	return name, v, nil
}

// inputs returns the expressions to process: args if there are any, otherwise
// the nonblank lines of in.
func inputs(args []string, in io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var r []string
	scan := bufio.NewScanner(in)
	for scan.Scan() {
		if s := strings.TrimSpace(scan.Text()); s != "" {
			r = append(r, s)
		}
	}
	if err := scan.Err(); err != nil {
		return nil, errors.Wrap(err, "reading expressions")
	}
	return r, nil
}

// each calls f on every input expression, reporting failures as they happen.
// The result wraps a *multierror.Error listing every failure.
func each(cmd *cobra.Command, args []string, f func(src string) error) error {
	srcs, err := inputs(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	var result *multierror.Error
	for _, src := range srcs {
		if err := f(src); err != nil {
			pterm.Error.Printfln("%s: %v", src, err)
			result = multierror.Append(result, errors.Wrap(err, src))
		}
	}
	if result != nil {
		return errors.Wrapf(result, "%d of %d expressions failed", len(result.Errors), len(srcs))
	}
	return nil
}
