package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/volcanolab/wws/data"
)

var withMetadata bool

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Print the remote server's channel menu",

	RunE: func(cmd *cobra.Command, args []string) error {
		cli, log, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		var channels []data.Channel
		if withMetadata {
			channels = cli.GetChannelsWithMetadata(cmd.Context())
		} else {
			channels = cli.GetChannels(cmd.Context())
		}

		fmt.Println("Channel count:", len(channels))
		for _, channel := range channels {
			fmt.Println(channel.String())
		}

		return nil
	},
}

func init() {
	menuCmd.Flags().BoolVar(&withMetadata, "metadata", false, "Include instrument metadata")
}
