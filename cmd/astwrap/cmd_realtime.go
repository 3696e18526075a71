package main

import (
	"github.com/spf13/cobra"

	orchestrators "github.com/ochairo/astwrap/internal/domain-orchestrators"
	"github.com/ochairo/astwrap/internal/domain/entities"
	"github.com/ochairo/astwrap/internal/domain/services"
)

type realtimeFlags struct {
	ignoredFilePath string
	containerTool   string
}

func newRealtimeCmd(a *app) *cobra.Command {
	flags := &realtimeFlags{}
	cmd := &cobra.Command{
		Use:   "realtime",
		Short: "Run realtime scan engines against a file or directory",
	}
	cmd.PersistentFlags().StringVar(&flags.ignoredFilePath, "ignored-file-path", "", "File listing findings to ignore")

	oss := &cobra.Command{
		Use:   "oss <source>",
		Short: "Scan dependency manifests for vulnerable packages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()
			res, err := a.service.OssRealtimeScan(ctx, args[0], flags.ignoredFilePath)
			if err != nil {
				return err
			}
			return a.printJSON(res)
		},
	}

	iac := &cobra.Command{
		Use:   "iac <source>",
		Short: "Scan infrastructure-as-code files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()
			res, err := a.service.IacRealtimeScan(ctx, args[0], flags.containerTool, flags.ignoredFilePath)
			if err != nil {
				return err
			}
			return a.printJSON(res)
		},
	}
	iac.Flags().StringVar(&flags.containerTool, "engine", "", "Container engine used by the IaC scanner (docker, podman)")

	secrets := &cobra.Command{
		Use:   "secrets <source>",
		Short: "Scan for hardcoded secrets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()
			res, err := a.service.SecretsRealtimeScan(ctx, args[0], flags.ignoredFilePath)
			if err != nil {
				return err
			}
			return a.printJSON(res)
		},
	}

	containers := &cobra.Command{
		Use:   "containers <source>",
		Short: "Scan container image references",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()
			res, err := a.service.ContainersRealtimeScan(ctx, args[0], flags.ignoredFilePath)
			if err != nil {
				return err
			}
			return a.printJSON(res)
		},
	}

	cmd.AddCommand(oss, iac, secrets, containers, newRealtimeAllCmd(a, flags))
	return cmd
}

func newRealtimeAllCmd(a *app, flags *realtimeFlags) *cobra.Command {
	var (
		engines  []string
		parallel bool
	)
	cmd := &cobra.Command{
		Use:   "all <source>",
		Short: "Run several realtime engines and summarize the findings",
		Example: `  astwrap realtime all ./project
  astwrap realtime all ./project --engines oss,secrets --parallel`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()
			res, err := a.orchestrator.ScanAll(ctx, args[0], orchestrators.ScanOptions{
				Engines:         engines,
				ContainerTool:   flags.containerTool,
				IgnoredFilePath: flags.ignoredFilePath,
				Parallel:        parallel,
			})
			if err != nil {
				return err
			}
			return a.printJSON(newScanReport(res))
		},
	}
	cmd.Flags().StringSliceVar(&engines, "engines", nil, "Engines to run (oss, iac, secrets, containers); default all")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "Run the engines concurrently")
	cmd.Flags().StringVar(&flags.containerTool, "engine", "", "Container engine used by the IaC scanner")
	return cmd
}

// scanReport is the printed form of a multi-engine scan
type scanReport struct {
	Source     string                      `json:"source"`
	DurationMS int64                       `json:"durationMs"`
	OSS        *entities.OssResults        `json:"oss,omitempty"`
	IaC        *entities.IacResults        `json:"iac,omitempty"`
	Secrets    *entities.SecretsResults    `json:"secrets,omitempty"`
	Containers *entities.ContainersResults `json:"containers,omitempty"`
	Errors     map[string]string           `json:"errors,omitempty"`
	Summary    *entities.RealtimeSummary   `json:"summary"`
}

func newScanReport(res *entities.RealtimeScanResult) scanReport {
	report := scanReport{
		Source:     res.Source,
		DurationMS: res.Duration.Milliseconds(),
		OSS:        res.OSS,
		IaC:        res.IaC,
		Secrets:    res.Secrets,
		Containers: res.Containers,
		Summary:    services.SummarizeRealtime(res),
	}
	if len(res.Errors) > 0 {
		report.Errors = make(map[string]string, len(res.Errors))
		for name, err := range res.Errors {
			report.Errors[name] = err.Error()
		}
	}
	return report
}
