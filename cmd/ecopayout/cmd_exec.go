package main

import (
	"github.com/spf13/cobra"

	"github.com/bitfsorg/ecopayout-go/host"
)

func newExecCmd() *cobra.Command {
	flags := envFlags{RequireContract: true}
	cmd := &cobra.Command{
		Use:   "exec <msg.json|->",
		Short: "Execute one command against the contract",
		Long: `Execute one command against the contract. The message is a JSON object
with exactly one of updateecostate, lock, unlock, changebeneficiary or
transferownership set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			msg, err := host.DecodeHandleMsg(data)
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
			resp, err := n.instance.Execute(env, msg)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
	flags.register(cmd)
	return cmd
}
