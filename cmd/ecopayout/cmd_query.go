package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bitfsorg/ecopayout-go/host"
)

func newQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <query.json|->",
		Short: "Run a read-only query against the contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			msg, err := host.DecodeQueryMsg(data)
			if err != nil {
				return err
			}

			n, err := openNode(cmd)
			if err != nil {
				return err
			}
			defer n.Close()

			out, err := n.instance.Query(msg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
}
