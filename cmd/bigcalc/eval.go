package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shabbyrobe/go-bigint/internal/calc"
)

func newEvalCmd() *cobra.Command {
	binary, unary := calc.Ops()
	return &cobra.Command{
		Use:   "eval [--color=MODE] A OP B | eval [--color=MODE] OP A",
		Short: "Evaluate a single operation",
		Long: fmt.Sprintf("Evaluate a single operation on decimal integers.\n\n"+
			"Binary operators: %s\nUnary operators:  %s\n\n"+
			"Only a leading --help/-h, --color=MODE or --color MODE is read as a flag;\n"+
			"everything after it, or after '--', is an operand, so negative operands\n"+
			"need no escaping.",
			strings.Join(binary, " "), strings.Join(unary, " ")),

		// Operands such as "-5" would otherwise be read as flags.
		DisableFlagParsing: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			args, help, err := evalFlags(cmd, args)
			if err != nil {
				return err
			}
			if help {
				return cmd.Help()
			}

			var out string
			switch len(args) {
			case 2:
				out, err = calc.Unary(args[0], args[1])
			case 3:
				out, err = calc.Binary(args[0], args[1], args[2])
			default:
				return fmt.Errorf("eval: expected 'A OP B' or 'OP A', got %d args", len(args))
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// evalFlags consumes the flags eval understands from the front of args and
// returns the remaining operands.
func evalFlags(cmd *cobra.Command, args []string) (rest []string, help bool, err error) {
	for len(args) > 0 {
		arg := args[0]
		switch {
		case arg == "--":
			return args[1:], false, nil

		case arg == "--help" || arg == "-h":
			return nil, true, nil

		case arg == "--color" || strings.HasPrefix(arg, "--color="):
			var mode string
			if v, ok := strings.CutPrefix(arg, "--color="); ok {
				mode = v
				args = args[1:]
			} else {
				if len(args) < 2 {
					return nil, false, fmt.Errorf("eval: --color needs a value")
				}
				mode = args[1]
				args = args[2:]
			}
			if err := cmd.Root().PersistentFlags().Set("color", mode); err != nil {
				return nil, false, err
			}
			if err := setupColor(cmd); err != nil {
				return nil, false, err
			}

		default:
			return args, false, nil
		}
	}
	return args, false, nil
}
