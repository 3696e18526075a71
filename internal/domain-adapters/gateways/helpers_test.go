package gateways

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ochairo/astwrap/internal/domain/entities"
)

// writeScript creates an executable /bin/sh script and returns its path
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := "#!/bin/sh\n" + body + "\n"
	//nolint:gosec // G306: test script must be executable
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		t.Fatalf("Failed to write script %s: %v", name, err)
	}
	return path
}

// mockRunner is a hand-written gateways.CommandRunner
type mockRunner struct {
	output *entities.ProcessOutput
	err    error
	calls  [][]string
}

func (m *mockRunner) Run(_ context.Context, args []string) (*entities.ProcessOutput, error) {
	m.calls = append(m.calls, args)
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}
