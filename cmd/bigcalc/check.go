package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/shabbyrobe/go-bigint/internal/calc"
)

var (
	passColor = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
)

func newCheckCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Run TOML case files and report failures",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var passed, failed int
			for _, path := range args {
				cases, err := calc.LoadFile(path)
				if err != nil {
					return err
				}
				for _, c := range cases {
					if err := c.Check(); err != nil {
						failed++
						fmt.Fprintf(out, "%s %s: %v\n", failColor.Sprint("FAIL"), path, err)
						continue
					}
					passed++
					if verbose {
						fmt.Fprintf(out, "%s %s: %s\n", passColor.Sprint("PASS"), path, c)
					}
				}
			}
			fmt.Fprintf(out, "%d passed, %d failed\n", passed, failed)
			if failed > 0 {
				return fmt.Errorf("check: %d of %d cases failed", failed, passed+failed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also print passing cases")
	return cmd
}
