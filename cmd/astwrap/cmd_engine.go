package main

import (
	"github.com/spf13/cobra"
)

func newEngineCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "engine",
		Short: "Container engine utilities",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "check <engine>",
		Short: "Verify that a container engine (docker, podman) is installed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()
			path, err := a.service.CheckEngineExist(ctx, args[0])
			if err != nil {
				return err
			}
			return a.printJSON(map[string]string{"engine": args[0], "path": path})
		},
	})
	return cmd
}

func newAuthCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authentication commands",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate the configured credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()
			msg, err := a.service.AuthValidate(ctx)
			if err != nil {
				return err
			}
			return a.printJSON(map[string]string{"message": msg})
		},
	})
	return cmd
}
