package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bartolsthoorn/gomosek/mosek"
)

var enumsCmd = &cobra.Command{
	Use:   "enums [FAMILY]",
	Short: "List MOSEK enumeration names",
	Long: `Enums lists the enumeration families known to the binding, or the names and
values of one family.

Example:
  eitp enums
  eitp enums solsta`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			for _, f := range mosek.Families() {
				fmt.Fprintln(out, f)
			}
			return nil
		}
		names, err := mosek.Names(args[0])
		if err != nil {
			return err
		}
		for _, name := range names {
			v, err := mosek.Lookup(args[0], name)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%6d  %s\n", v, name)
		}
		return nil
	},
}
