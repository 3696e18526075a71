package cliout

import (
	"errors"

	"github.com/ochairo/astwrap/internal/domain/entities"
)

var errNotArray = errors.New("payload is not an array")

// ParseTenantSettings decodes the array printed by `utils tenant --format json`
func (p *ResultParser) ParseTenantSettings(line string) []entities.TenantSetting {
	if isBlank(line) {
		return nil
	}

	root, err := decodeDocument(line)
	if err != nil {
		p.skip("tenant", line, err)
		return nil
	}

	elems, ok := root.([]any)
	if !ok {
		p.skip("tenant", line, errNotArray)
		return nil
	}

	settings, err := objects(elems, toTenantSetting)
	if err != nil {
		p.skip("tenant", line, err)
		return nil
	}
	return settings
}

func toTenantSetting(o object) (entities.TenantSetting, error) {
	var s entities.TenantSetting
	var err error

	if s.Key, err = o.str("key"); err != nil {
		return s, err
	}
	if s.Value, err = o.str("value"); err != nil {
		return s, err
	}
	return s, nil
}
