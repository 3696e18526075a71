package main

import (
	"github.com/spf13/cobra"

	"github.com/ochairo/astwrap/internal/domain/entities"
)

func newTelemetryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "telemetry",
		Short: "Report usage telemetry",
	}

	var event entities.TelemetryEvent
	ai := &cobra.Command{
		Use:   "ai",
		Short: "Report an AI feature interaction",
		Example: `  astwrap telemetry ai --ai-provider Copilot --agent VSCode --type click --sub-type fix \
    --engine oss --problem-severity High --scan-type realtime --status detected --total-count 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()
			msg, err := a.service.TelemetryAIEvent(ctx, event)
			if err != nil {
				return err
			}
			return a.printJSON(map[string]string{"message": msg})
		},
	}

	f := ai.Flags()
	f.StringVar(&event.AIProvider, "ai-provider", "", "AI provider name")
	f.StringVar(&event.Agent, "agent", "", "Client agent name")
	f.StringVar(&event.EventType, "type", "", "Event type")
	f.StringVar(&event.SubType, "sub-type", "", "Event sub-type")
	f.StringVar(&event.Engine, "engine", "", "Engine that produced the finding")
	f.StringVar(&event.ProblemSeverity, "problem-severity", "", "Severity of the finding")
	f.StringVar(&event.ScanType, "scan-type", "", "Scan type")
	f.StringVar(&event.Status, "status", "", "Finding status")
	f.IntVar(&event.TotalCount, "total-count", 0, "Number of findings")

	cmd.AddCommand(ai)
	return cmd
}
