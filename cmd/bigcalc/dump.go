package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	bigint "github.com/shabbyrobe/go-bigint"
)

type limbDump struct {
	Value  string
	Neg    bool
	BitLen int
	Limbs  []string
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump A",
		Short: "Print the stored limbs of a value, least significant first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := bigint.IntFromString(args[0])
			if err != nil {
				return err
			}
			dumpConfig.Fdump(cmd.OutOrStdout(), newLimbDump(v))
			return nil
		},
	}
}

func newLimbDump(v bigint.Int) limbDump {
	d := limbDump{
		Value:  v.String(),
		Neg:    v.IsNeg(),
		BitLen: v.BitLen(),
		Limbs:  []string{},
	}
	for _, l := range v.Limbs() {
		d.Limbs = append(d.Limbs, fmt.Sprintf("0x%08x", l))
	}
	return d
}
