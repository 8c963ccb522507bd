package main

import (
	"github.com/spf13/cobra"

	"github.com/bitfsorg/ecopayout-go/host"
)

func newInitCmd() *cobra.Command {
	var flags envFlags
	cmd := &cobra.Command{
		Use:   "init <init.json|->",
		Short: "Create the contract record; the signer becomes the owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			msg, err := host.DecodeInitMsg(data)
			if err != nil {
				return err
			}

			n, err := openNode(cmd)
			if err != nil {
				return err
			}
			defer n.Close()

			env, err := n.env(&flags)
			if err != nil {
				return err
			}
			resp, err := n.instance.Init(env, msg)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
	flags.register(cmd)
	return cmd
}
