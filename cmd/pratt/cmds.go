package main

import (
	"fmt"
	"math/big"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/pratt"
)

func newTokensCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [--] [expr...]",
		Short: "List the tokens of each expression",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.env()
			if err != nil {
				return err
			}
			return each(cmd, args, func(src string) error {
				data, err := tokens(src, e.g.Lexicon())
				if err != nil {
					return err
				}
				s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
				if err != nil {
					return errors.Wrap(err, "rendering table")
				}
				fmt.Fprintln(cmd.OutOrStdout(), s)
				return nil
			})
		},
	}
}

// tokens scans src into table rows, with a header row.
func tokens(src string, lex *pratt.Lexicon) (pterm.TableData, error) {
	data := pterm.TableData{{"Pos", "Kind", "Text", "Trivia"}}
	s := pratt.NewScanner(src, lex)
	for {
		tok, err := s.Next()
		if err != nil {
			return nil, err
		}
		data = append(data, []string{tok.Pos.String(), tok.Kind.String(), strconv.Quote(tok.Text), strconv.Quote(tok.Trivia)})
		if tok.Kind == pratt.KindEnd {
			return data, nil
		}
	}
}

func newRenderCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "render [--] [expr...]",
		Short: "Print each expression with minimal brackets",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.env()
			if err != nil {
				return err
			}
			return each(cmd, args, func(src string) error {
				n, err := e.parse(src)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), e.ev.Render(n, 0))
				return nil
			})
		},
	}
}

func newEvalCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "eval [--] [expr...]",
		Short: "Evaluate each expression",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.env()
			if err != nil {
				return err
			}
			return each(cmd, args, func(src string) error {
				n, err := e.parse(src)
				if err != nil {
					return err
				}
				if pterm.PrintDebugMessages {
					if s, err := e.ev.CompileText(n, e.globalNames()); err == nil {
						pterm.Debug.Println(s)
					}
				}
				r, err := e.ev.Eval(n, e.globals, nil)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), format(r))
				return nil
			})
		},
	}
}

func newCompileCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "compile [--] [expr...]",
		Short: "Print each expression in the notation of the evaluation type",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.env()
			if err != nil {
				return err
			}
			return each(cmd, args, func(src string) error {
				n, err := e.parse(src)
				if err != nil {
					return err
				}
				s, err := e.ev.CompileText(n, e.globalNames())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), s)
				return nil
			})
		},
	}
}

func newInvertCmd(opts *options) *cobra.Command {
	var result string
	cmd := &cobra.Command{
		Use:   "invert name [--] [expr...]",
		Short: "Solve each expression for a variable",
		Long: "Solve each expression for name, given that the expression equals the\n" +
			"variable named by --result.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.env()
			if err != nil {
				return err
			}
			name := args[0]
			return each(cmd, args[1:], func(src string) error {
				n, err := e.parse(src)
				if err != nil {
					return err
				}
				inv, err := e.ev.Invert(name, n, result)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), e.ev.Render(inv, 0))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&result, "result", "r", "r", "name of the expression's result")
	return cmd
}

func (e *env) parse(src string) (*pratt.Node, error) {
	n, err := e.g.Parse(src)
	if err != nil {
		return nil, err
	}
	pterm.Debug.Println(n.String())
	return n, nil
}

func (e *env) globalNames() map[string]bool {
	r := make(map[string]bool, len(e.globals))
	for k := range e.globals {
		r[k] = true
	}
	return r
}

// format formats an evaluation result. Floats use the fewest digits that
// identify them exactly.
func format(v interface{}) string {
	switch v := v.(type) {
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case *big.Float:
		return v.Text('g', -1)
	case string:
		return strconv.Quote(v)
	case nil:
		return "null"
	default:
		return fmt.Sprint(v)
	}
}

// sortedNames lists the names of m in order.
func sortedNames(m map[string]interface{}) []string {
	r := make([]string, 0, len(m))
	for k := range m {
		r = append(r, k)
	}
	sort.Strings(r)
	return r
}
