package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/volcanolab/wws/internal/meta"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Report client build info and the protocol version the remote server speaks",

	RunE: func(cmd *cobra.Command, args []string) error {
		info := meta.GetInfo()
		fmt.Printf("wws %s (%s, %s, built %s)\n", info.Version, info.Build, info.GoVersion, info.BuildTime)

		cli, log, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		fmt.Println("Server protocol version:", cli.GetProtocolVersion(cmd.Context()))

		return nil
	},
}
