package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X .../internal/cli.Version=v1.2.3"
var (
	Version = "0.1.0"
	Commit  = ""
	Date    = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the promptpack version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("promptpack %s", Version)
		if Commit != "" {
			fmt.Printf(" (%s)", Commit)
		}
		if Date != "" {
			fmt.Printf(" built %s", Date)
		}
		fmt.Println()
	},
}
