// Command bigcalc evaluates bigint operations from the command line, runs
// TOML case files and dumps the limb layout of a value.
//
// Usage:
//
//	bigcalc eval 123456789012345678901234567890 '*' -2
//	bigcalc eval neg 5
//	bigcalc check internal/calc/testdata/*.toml
//	bigcalc dump -- -4294967296
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bigcalc",
		Short:         "Arbitrary-precision integer calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupColor(cmd)
		},
	}

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newDumpCmd())
	return rootCmd
}

func setupColor(cmd *cobra.Command) error {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	switch colorFlag {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(os.Stdout)
	default:
		return fmt.Errorf("invalid --color %q (want auto, on or off)", colorFlag)
	}
	return nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
