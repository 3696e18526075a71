// Package cliout decodes the machine-readable output lines of the CLI into
// domain entities.
//
// Every Parse method takes one raw line and returns nil when the line carries
// no result for its domain: blank input, unrelated log text, malformed or
// partial JSON. Such lines are expected noise in a mixed output stream and are
// only reported at debug level. A non-nil result always has non-nil
// collections.
package cliout

import (
	"strings"

	"github.com/ochairo/astwrap/internal/domain/interfaces"
)

const (
	packagesMarker = `"Packages"`
	imagesMarker   = `"Images"`
)

// ResultParser holds no state besides its logger and is safe for concurrent use
type ResultParser struct {
	logger interfaces.Logger
}

// NewResultParser creates a new result parser
func NewResultParser(logger interfaces.Logger) *ResultParser {
	return &ResultParser{logger: interfaces.OrNoOp(logger)}
}

func (p *ResultParser) skip(domain, line string, err error) {
	p.logger.Debug("skipping cli output line",
		interfaces.F("domain", domain),
		interfaces.F("line", line),
		interfaces.F("reason", err.Error()),
	)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
