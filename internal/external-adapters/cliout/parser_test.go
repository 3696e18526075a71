package cliout

import (
	"testing"

	"github.com/ochairo/astwrap/internal/domain/interfaces"
)

type recordingLogger struct {
	debug []string
	other int
}

func (r *recordingLogger) Debug(msg string, _ ...interfaces.Field) { r.debug = append(r.debug, msg) }
func (r *recordingLogger) Info(_ string, _ ...interfaces.Field)    { r.other++ }
func (r *recordingLogger) Warn(_ string, _ ...interfaces.Field)    { r.other++ }
func (r *recordingLogger) Error(_ string, _ ...interfaces.Field)   { r.other++ }

func TestResultParser_SkipsAreDebugOnly(t *testing.T) {
	log := &recordingLogger{}
	p := NewResultParser(log)

	_ = p.ParseOss(`{"Packages":[`)
	_ = p.ParseIac(`nope`)
	_ = p.ParseMask(`[]`)

	if len(log.debug) != 3 {
		t.Errorf("debug entries = %d, want 3", len(log.debug))
	}
	if log.other != 0 {
		t.Errorf("non-debug entries = %d, want 0", log.other)
	}
}

func TestResultParser_PrefilterDoesNotLog(t *testing.T) {
	log := &recordingLogger{}
	p := NewResultParser(log)

	_ = p.ParseOss("plain log text")
	_ = p.ParseContainers(`{"Packages":[]}`)
	_ = p.ParseSecrets("   ")

	if len(log.debug) != 0 {
		t.Errorf("debug entries = %v, want none", log.debug)
	}
}

func TestNewResultParser_NilLogger(t *testing.T) {
	p := NewResultParser(nil)
	if got := p.ParseIac("{"); got != nil {
		t.Errorf("ParseIac() = %+v, want nil", got)
	}
}
