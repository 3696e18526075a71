package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ochairo/astwrap/internal/domain/entities"
)

func newExecCmd(a *app) *cobra.Command {
	var (
		values   []string
		switches []string
	)
	cmd := &cobra.Command{
		Use:   "exec <command> [args...]",
		Short: "Run any CLI command and print the response envelope",
		Example: `  astwrap exec scan list --flag filter=limit=10
  astwrap exec project show --flag project-id=42 --switch debug`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := buildRequest(args, values, switches)
			if err != nil {
				return err
			}

			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()
			res, err := a.service.Execute(ctx, req)
			if err != nil {
				return err
			}
			return a.printJSON(res)
		},
	}
	cmd.Flags().StringArrayVar(&values, "flag", nil, "CLI flag as name=value (repeatable)")
	cmd.Flags().StringArrayVar(&switches, "switch", nil, "CLI flag without a value (repeatable)")
	return cmd
}

// buildRequest turns exec arguments into a CommandRequest. Flag names get a
// "--" prefix unless they already start with "-".
func buildRequest(args, values, switches []string) (*entities.CommandRequest, error) {
	req := entities.NewCommandRequest(args[0])
	for _, arg := range args[1:] {
		req.AddArg(arg)
	}
	for _, v := range values {
		name, value, ok := strings.Cut(v, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --flag %q: want name=value", v)
		}
		req.AddFlag(flagName(name), value)
	}
	for _, s := range switches {
		if s == "" {
			return nil, errors.New("empty --switch name")
		}
		req.AddBoolFlag(flagName(s))
	}
	return req, nil
}

func flagName(name string) string {
	if strings.HasPrefix(name, "-") {
		return name
	}
	return "--" + name
}
