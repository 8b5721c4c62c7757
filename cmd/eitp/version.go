package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bartolsthoorn/gomosek/mosek"
)

// version of the eitp command.
const version = "0.3.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the eitp and MOSEK versions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("eitp", version)
		v, err := mosek.LibraryVersion()
		if err != nil {
			fmt.Println("mosek", color.YellowString(err.Error()))
			return
		}
		fmt.Println("mosek", v)
	},
}
