package cliout

import (
	"encoding/json"
	"strings"

	"github.com/ochairo/astwrap/internal/domain/entities"
)

// InvalidJSONMessage is the envelope error for output that is not one JSON document
const InvalidJSONMessage = "Invalid JSON output"

// Envelope wraps captured output in the uniform response. Success depends on
// the exit code alone; the raw output is always kept so callers can apply a
// domain decoder to it.
func (p *ResultParser) Envelope(out *entities.ProcessOutput) *entities.CommandResponse {
	if out == nil {
		out = &entities.ProcessOutput{}
	}

	resp := &entities.CommandResponse{
		ExitCode:  out.ExitCode,
		Success:   out.ExitCode == 0,
		RawOutput: out.Output,
	}
	if strings.TrimSpace(out.Output) == "" {
		return resp
	}

	tree, err := decodeDocument(out.Output)
	if err != nil {
		p.skip("envelope", out.Output, err)
		resp.ErrorMessage = InvalidJSONMessage
		return resp
	}
	if tree == nil {
		// A literal null is a parsed document, not a missing one
		resp.JSONOutput = json.RawMessage("null")
		return resp
	}
	resp.JSONOutput = tree
	return resp
}
