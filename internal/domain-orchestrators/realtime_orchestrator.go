// Package orchestrators coordinates complex workflows across multiple domain services.
package orchestrators

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ochairo/astwrap/internal/domain/entities"
	"github.com/ochairo/astwrap/internal/domain/interfaces"
	"github.com/ochairo/astwrap/internal/domain/interfaces/services"
)

// Realtime engine names
const (
	EngineOSS        = "oss"
	EngineIaC        = "iac"
	EngineSecrets    = "secrets"
	EngineContainers = "containers"
)

// AllEngines lists every realtime engine in scan order
var AllEngines = []string{EngineOSS, EngineIaC, EngineSecrets, EngineContainers}

// ScanOptions selects the engines and their shared options
type ScanOptions struct {
	// Engines to run; empty means AllEngines
	Engines         []string
	ContainerTool   string
	IgnoredFilePath string
	// Parallel runs the engines concurrently. Each engine is its own process.
	Parallel bool
}

// RealtimeOrchestrator runs several realtime engines against one source.
// Engines are best-effort: a failing engine is recorded in the result and the
// others still run.
type RealtimeOrchestrator struct {
	realtime services.RealtimeService
	logger   interfaces.Logger
}

// NewRealtimeOrchestrator creates a new realtime orchestrator
func NewRealtimeOrchestrator(realtime services.RealtimeService, logger interfaces.Logger) *RealtimeOrchestrator {
	return &RealtimeOrchestrator{
		realtime: realtime,
		logger:   interfaces.OrNoOp(logger),
	}
}

// ScanAll runs the selected engines. It only returns an error for an unknown
// engine name; engine failures end up in RealtimeScanResult.Errors.
func (o *RealtimeOrchestrator) ScanAll(ctx context.Context, source string, opts ScanOptions) (*entities.RealtimeScanResult, error) {
	requested := opts.Engines
	if len(requested) == 0 {
		requested = AllEngines
	}

	engines := make([]string, 0, len(requested))
	steps := make([]func(context.Context, *entities.RealtimeScanResult) error, 0, len(requested))
	seen := map[string]bool{}
	for _, engine := range requested {
		if seen[engine] {
			continue
		}
		seen[engine] = true
		step, err := o.step(engine, source, opts)
		if err != nil {
			return nil, err
		}
		engines = append(engines, engine)
		steps = append(steps, step)
	}

	startTime := time.Now()
	result := &entities.RealtimeScanResult{
		Source: source,
		Errors: map[string]error{},
	}

	var mu sync.Mutex
	record := func(engine string, err error) {
		mu.Lock()
		defer mu.Unlock()
		result.Errors[engine] = err
	}

	// Each step writes a distinct result field, only Errors is shared
	run := func(engine string, step func(context.Context, *entities.RealtimeScanResult) error) {
		if err := step(ctx, result); err != nil {
			o.logger.Warn("realtime engine failed",
				interfaces.F("engine", engine),
				interfaces.F("source", source),
				interfaces.F("error", err.Error()),
			)
			record(engine, err)
		}
	}

	if opts.Parallel {
		var wg sync.WaitGroup
		for i, engine := range engines {
			wg.Add(1)
			go func(engine string, step func(context.Context, *entities.RealtimeScanResult) error) {
				defer wg.Done()
				run(engine, step)
			}(engine, steps[i])
		}
		wg.Wait()
	} else {
		for i, engine := range engines {
			run(engine, steps[i])
		}
	}

	result.Duration = time.Since(startTime)
	o.logger.Info("realtime scan finished",
		interfaces.F("source", source),
		interfaces.F("engines", len(engines)),
		interfaces.F("failed", len(result.Errors)),
		interfaces.F("duration", result.Duration.String()),
	)
	return result, nil
}

func (o *RealtimeOrchestrator) step(engine, source string, opts ScanOptions) (func(context.Context, *entities.RealtimeScanResult) error, error) {
	switch engine {
	case EngineOSS:
		return func(ctx context.Context, r *entities.RealtimeScanResult) (err error) {
			r.OSS, err = o.realtime.OssRealtimeScan(ctx, source, opts.IgnoredFilePath)
			return err
		}, nil
	case EngineIaC:
		return func(ctx context.Context, r *entities.RealtimeScanResult) (err error) {
			r.IaC, err = o.realtime.IacRealtimeScan(ctx, source, opts.ContainerTool, opts.IgnoredFilePath)
			return err
		}, nil
	case EngineSecrets:
		return func(ctx context.Context, r *entities.RealtimeScanResult) (err error) {
			r.Secrets, err = o.realtime.SecretsRealtimeScan(ctx, source, opts.IgnoredFilePath)
			return err
		}, nil
	case EngineContainers:
		return func(ctx context.Context, r *entities.RealtimeScanResult) (err error) {
			r.Containers, err = o.realtime.ContainersRealtimeScan(ctx, source, opts.IgnoredFilePath)
			return err
		}, nil
	default:
		return nil, fmt.Errorf("unknown realtime engine %q", engine)
	}
}
