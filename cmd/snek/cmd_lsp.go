package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/dhamidi/snek/codebase"
)

func newLSPCmd() *cobra.Command {
	var tcpAddress string
	var wsAddress string

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		Long: `Start the Language Server Protocol server.

The server talks to a single client over stdio unless --tcp or
--websocket names an address to listen on.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if tcpAddress != "" && wsAddress != "" {
				return errors.New("--tcp and --websocket are mutually exclusive")
			}
			server := codebase.NewLSPServer(version)
			switch {
			case tcpAddress != "":
				log.Infof("listening on tcp %s", tcpAddress)
				return server.RunTCP(tcpAddress)
			case wsAddress != "":
				log.Infof("listening on websocket %s", wsAddress)
				return server.RunWebSocket(wsAddress)
			}
			return server.RunStdio()
		},
	}

	cmd.Flags().StringVar(&tcpAddress, "tcp", "", "listen for clients on this TCP address")
	cmd.Flags().StringVar(&wsAddress, "websocket", "", "listen for clients on this WebSocket address")

	return cmd
}
