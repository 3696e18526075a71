package cliout

import (
	"github.com/ochairo/astwrap/internal/domain/entities"
)

// ParseMask decodes the output of the mask command. Extraction is field by
// field: missing keys and incomplete entries take zero values instead of
// failing the whole line.
func (p *ResultParser) ParseMask(line string) *entities.MaskResult {
	if isBlank(line) {
		return nil
	}

	root, err := decodeDocument(line)
	if err != nil {
		p.skip("mask", line, err)
		return nil
	}

	obj, err := asObject(root)
	if err != nil {
		p.skip("mask", line, err)
		return nil
	}

	var secrets []entities.MaskedSecret
	if elems, ok := obj["maskedSecrets"].([]any); ok {
		secrets = make([]entities.MaskedSecret, 0, len(elems))
		for _, elem := range elems {
			secrets = append(secrets, toMaskedSecret(elem))
		}
	}

	return entities.NewMaskResult(secrets, text(obj["maskedFile"]))
}

func toMaskedSecret(v any) entities.MaskedSecret {
	m, ok := v.(map[string]any)
	if !ok {
		return entities.MaskedSecret{}
	}
	return entities.MaskedSecret{
		Masked: text(m["masked"]),
		Secret: text(m["secret"]),
		Line:   intOrZero(m["line"]),
	}
}
