package main

import (
	"context"

	"github.com/spf13/cobra"
)

func newMaskCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mask <file>",
		Short: "Mask the secrets found in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()
			res, err := a.service.MaskSecrets(ctx, args[0])
			if err != nil {
				return err
			}
			return a.printJSON(res)
		},
	}
}

func newTenantCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tenant",
		Short: "Inspect tenant settings",
	}

	settings := &cobra.Command{
		Use:   "settings",
		Short: "List every tenant setting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()
			res, err := a.service.TenantSettings(ctx)
			if err != nil {
				return err
			}
			return a.printJSON(res)
		},
	}

	ideScans := newTenantFlagCmd(a, "ide-scans", "Report whether IDE scans are enabled",
		func(ctx context.Context) (bool, error) { return a.service.IdeScansEnabled(ctx) })
	aiMcp := newTenantFlagCmd(a, "ai-mcp", "Report whether the AI MCP server is enabled",
		func(ctx context.Context) (bool, error) { return a.service.AiMcpServerEnabled(ctx) })

	cmd.AddCommand(settings, ideScans, aiMcp)
	return cmd
}

func newTenantFlagCmd(a *app, use, short string, check func(context.Context) (bool, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()
			enabled, err := check(ctx)
			if err != nil {
				return err
			}
			return a.printJSON(map[string]bool{"enabled": enabled})
		},
	}
}
