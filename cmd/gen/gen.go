package gen

import (
	"github.com/spf13/cobra"
)

// RootCmd groups the documentation generators; it hangs off the main
// wws command tree.
var RootCmd = &cobra.Command{
	Use:   "gen",
	Short: "Several useful generators",
	Long:  `Several useful generators`,
}

func init() {
	RootCmd.AddCommand(ManPagesCmd)
}
