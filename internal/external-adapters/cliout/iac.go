package cliout

import (
	"strings"

	"github.com/ochairo/astwrap/internal/domain/entities"
)

// ParseIac decodes an iac-realtime result line. The engine prints either an
// array of issues or, for a single issue, the bare issue object.
func (p *ResultParser) ParseIac(line string) *entities.IacResults {
	if isBlank(line) {
		return nil
	}

	trimmed := strings.TrimSpace(line)
	root, err := decodeDocument(trimmed)
	if err != nil {
		p.skip("iac", line, err)
		return nil
	}

	issues, err := items(root, classifyShape(trimmed), toIacIssue)
	if err != nil {
		p.skip("iac", line, err)
		return nil
	}

	return entities.NewIacResults(issues)
}

func toIacIssue(o object) (entities.IacIssue, error) {
	var issue entities.IacIssue
	var err error

	if issue.Title, err = o.str("Title"); err != nil {
		return issue, err
	}
	if issue.Description, err = o.str("Description"); err != nil {
		return issue, err
	}
	if issue.SimilarityID, err = o.str("SimilarityID"); err != nil {
		return issue, err
	}
	if issue.FilePath, err = o.str("FilePath"); err != nil {
		return issue, err
	}
	if issue.Severity, err = o.str("Severity"); err != nil {
		return issue, err
	}
	if issue.ExpectedValue, err = o.str("ExpectedValue"); err != nil {
		return issue, err
	}
	if issue.ActualValue, err = o.str("ActualValue"); err != nil {
		return issue, err
	}
	if issue.Locations, err = field(o, "Locations", toLocation); err != nil {
		return issue, err
	}
	return issue, nil
}
