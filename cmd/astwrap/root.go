package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/ochairo/astwrap/internal/domain-adapters/gateways"
	orchestrators "github.com/ochairo/astwrap/internal/domain-orchestrators"
	gwifaces "github.com/ochairo/astwrap/internal/domain/interfaces/gateways"
	svcifaces "github.com/ochairo/astwrap/internal/domain/interfaces/services"
	"github.com/ochairo/astwrap/internal/domain/services"
	"github.com/ochairo/astwrap/internal/external-adapters/cliout"
	"github.com/ochairo/astwrap/internal/external-adapters/yaml"
	"github.com/ochairo/astwrap/internal/external-adapters/zaplog"
)

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	configPath string
	logLevel   string
	executable string
	timeout    time.Duration
}

// app is the wired object graph for one command run
type app struct {
	out          io.Writer
	logger       *zaplog.Logger
	service      svcifaces.WrapperService
	orchestrator *orchestrators.RealtimeOrchestrator
	decoder      gwifaces.OutputDecoder
	timeout      time.Duration
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &globalOptions{}
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "astwrap",
		Short:         "astwrap runs the Checkmarx One CLI and decodes its output",
		Long:          `astwrap builds CLI invocations for realtime scans, tenant settings, masking and telemetry, then prints typed results as JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.wire(cmd.Context(), opts)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to the YAML configuration file")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.executable, "executable", "", "Path to the cx executable")
	flags.DurationVar(&opts.timeout, "timeout", 0, "Abort the CLI invocation after this duration")

	root.AddCommand(
		newRealtimeCmd(a),
		newMaskCmd(a),
		newTenantCmd(a),
		newEngineCmd(a),
		newTelemetryCmd(a),
		newAuthCmd(a),
		newResultsCmd(a),
		newExecCmd(a),
	)

	return root
}

// wire builds the logger, configuration and services for this run
func (a *app) wire(ctx context.Context, opts *globalOptions) error {
	cfg, err := yaml.NewConfigRepository(opts.configPath).Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.executable != "" {
		cfg.PathToExecutable = opts.executable
	}

	logger, err := zaplog.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	a.logger = logger

	var resolver gwifaces.ExecutableResolver = gateways.NewPathResolver(cfg.PathToExecutable, logger)
	if cfg.Verification.Enabled() {
		verifier, err := gateways.NewGPGVerifier(cfg.Verification.KeyringPath)
		if err != nil {
			return fmt.Errorf("failed to load verification keyring: %w", err)
		}
		resolver = gateways.NewVerifyingResolver(resolver, verifier, cfg.Verification.SignaturePath, logger)
	}
	if cfg.Verification.SHA256 != "" {
		resolver = gateways.NewChecksumResolver(resolver, cfg.Verification.SHA256, logger)
	}

	runner := gateways.NewCLIExecutor(logger)
	decoder := cliout.NewResultParser(logger)
	probe := gateways.NewEngineProbe(runner, runtime.GOOS, logger)

	a.decoder = decoder
	a.service = services.NewWrapper(cfg, resolver, runner, decoder, probe, logger)
	a.orchestrator = orchestrators.NewRealtimeOrchestrator(a.service, logger)
	a.timeout = opts.timeout
	return nil
}

// withTimeout applies the --timeout flag to ctx
func (a *app) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.timeout)
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
