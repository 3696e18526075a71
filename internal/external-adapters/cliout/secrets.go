package cliout

import (
	"strings"

	"github.com/ochairo/astwrap/internal/domain/entities"
)

// ParseSecrets decodes a secrets-realtime result line, array or single object.
// Unlike packages and images there is no marker key to pre-filter on.
func (p *ResultParser) ParseSecrets(line string) *entities.SecretsResults {
	if isBlank(line) {
		return nil
	}

	trimmed := strings.TrimSpace(line)
	root, err := decodeDocument(trimmed)
	if err != nil {
		p.skip("secrets", line, err)
		return nil
	}

	secrets, err := items(root, classifyShape(trimmed), toSecret)
	if err != nil {
		p.skip("secrets", line, err)
		return nil
	}

	return entities.NewSecretsResults(secrets)
}

func toSecret(o object) (entities.Secret, error) {
	var s entities.Secret
	var err error

	if s.Title, err = o.str("Title"); err != nil {
		return s, err
	}
	if s.Description, err = o.str("Description"); err != nil {
		return s, err
	}
	if s.SecretValue, err = o.str("SecretValue"); err != nil {
		return s, err
	}
	if s.FilePath, err = o.str("FilePath"); err != nil {
		return s, err
	}
	if s.Severity, err = o.str("Severity"); err != nil {
		return s, err
	}
	if s.Locations, err = field(o, "Locations", toLocation); err != nil {
		return s, err
	}
	return s, nil
}
