package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newResultsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "results",
		Short: "Scan result utilities",
	}

	var (
		scanID    string
		queryID   string
		nodesFile string
	)
	bfl := &cobra.Command{
		Use:   "bfl",
		Short: "Find which result node is the best fix location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := uuid.Parse(scanID)
			if err != nil {
				return fmt.Errorf("invalid scan id %q: %w", scanID, err)
			}

			//nolint:gosec // G304: nodesFile is chosen by the operator
			data, err := os.ReadFile(nodesFile)
			if err != nil {
				return fmt.Errorf("failed to read nodes file: %w", err)
			}
			nodes := a.decoder.ParseNodes(string(data))
			if nodes == nil {
				return errors.New("nodes file does not contain a JSON array of nodes")
			}

			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()
			index, err := a.service.ResultsBFL(ctx, id, queryID, nodes)
			if err != nil {
				return err
			}
			return a.printJSON(map[string]int{"index": index})
		},
	}
	bfl.Flags().StringVar(&scanID, "scan-id", "", "Scan identifier (UUID)")
	bfl.Flags().StringVar(&queryID, "query-id", "", "Query identifier")
	bfl.Flags().StringVar(&nodesFile, "nodes", "", "JSON file holding the result nodes")
	_ = bfl.MarkFlagRequired("scan-id")
	_ = bfl.MarkFlagRequired("query-id")
	_ = bfl.MarkFlagRequired("nodes")

	cmd.AddCommand(bfl)
	return cmd
}
