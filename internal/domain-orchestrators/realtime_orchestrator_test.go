package orchestrators

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/ochairo/astwrap/internal/domain/entities"
)

// mockRealtimeService is a mock implementation for testing
type mockRealtimeService struct {
	mu    sync.Mutex
	calls []string
	fail  map[string]error
}

func (m *mockRealtimeService) called(engine string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, engine)
	return m.fail[engine]
}

func (m *mockRealtimeService) OssRealtimeScan(_ context.Context, _, _ string) (*entities.OssResults, error) {
	if err := m.called(EngineOSS); err != nil {
		return nil, err
	}
	return entities.NewOssResults([]entities.OssPackage{{PackageName: "lodash"}}), nil
}

func (m *mockRealtimeService) IacRealtimeScan(_ context.Context, _, containerTool, _ string) (*entities.IacResults, error) {
	if err := m.called(EngineIaC); err != nil {
		return nil, err
	}
	return entities.NewIacResults([]entities.IacIssue{{Title: "engine:" + containerTool}}), nil
}

func (m *mockRealtimeService) SecretsRealtimeScan(_ context.Context, _, _ string) (*entities.SecretsResults, error) {
	if err := m.called(EngineSecrets); err != nil {
		return nil, err
	}
	return entities.NewSecretsResults(nil), nil
}

func (m *mockRealtimeService) ContainersRealtimeScan(_ context.Context, _, _ string) (*entities.ContainersResults, error) {
	if err := m.called(EngineContainers); err != nil {
		return nil, err
	}
	return entities.NewContainersResults(nil), nil
}

func TestRealtimeOrchestrator_ScanAll(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		name := "sequential"
		if parallel {
			name = "parallel"
		}
		t.Run(name, func(t *testing.T) {
			svc := &mockRealtimeService{}
			o := NewRealtimeOrchestrator(svc, nil)

			result, err := o.ScanAll(context.Background(), "/repo", ScanOptions{ContainerTool: "docker", Parallel: parallel})
			if err != nil {
				t.Fatalf("ScanAll() error = %v", err)
			}
			if len(svc.calls) != 4 {
				t.Errorf("engine calls = %v, want 4", svc.calls)
			}
			if result.OSS == nil || result.IaC == nil || result.Secrets == nil || result.Containers == nil {
				t.Fatalf("ScanAll() result = %+v, want every engine populated", result)
			}
			if result.IaC.Results[0].Title != "engine:docker" {
				t.Errorf("container tool not forwarded: %+v", result.IaC.Results)
			}
			if len(result.Errors) != 0 {
				t.Errorf("Errors = %v, want none", result.Errors)
			}
		})
	}
}

func TestRealtimeOrchestrator_ScanAll_BestEffort(t *testing.T) {
	boom := errors.New("engine crashed")
	svc := &mockRealtimeService{fail: map[string]error{EngineIaC: boom, EngineContainers: boom}}

	result, err := NewRealtimeOrchestrator(svc, nil).ScanAll(context.Background(), "/repo", ScanOptions{Parallel: true})
	if err != nil {
		t.Fatalf("ScanAll() error = %v", err)
	}
	if result.OSS == nil || result.Secrets == nil {
		t.Errorf("healthy engines missing: %+v", result)
	}
	if result.IaC != nil || result.Containers != nil {
		t.Errorf("failed engines should have nil results: %+v", result)
	}

	failed := make([]string, 0, len(result.Errors))
	for engine, e := range result.Errors {
		if !errors.Is(e, boom) {
			t.Errorf("Errors[%s] = %v", engine, e)
		}
		failed = append(failed, engine)
	}
	sort.Strings(failed)
	if len(failed) != 2 || failed[0] != EngineContainers || failed[1] != EngineIaC {
		t.Errorf("failed engines = %v", failed)
	}
}

func TestRealtimeOrchestrator_ScanAll_Selection(t *testing.T) {
	svc := &mockRealtimeService{}
	o := NewRealtimeOrchestrator(svc, nil)

	result, err := o.ScanAll(context.Background(), "/repo", ScanOptions{Engines: []string{EngineSecrets, EngineSecrets, EngineOSS}})
	if err != nil {
		t.Fatalf("ScanAll() error = %v", err)
	}
	if len(svc.calls) != 2 || svc.calls[0] != EngineSecrets || svc.calls[1] != EngineOSS {
		t.Errorf("engine calls = %v, want [secrets oss]", svc.calls)
	}
	if result.IaC != nil || result.Containers != nil {
		t.Errorf("unselected engines ran: %+v", result)
	}

	if _, err := o.ScanAll(context.Background(), "/repo", ScanOptions{Engines: []string{"kics"}}); err == nil {
		t.Error("ScanAll() should reject an unknown engine")
	}
}
