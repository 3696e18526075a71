package entities

// MaskedSecret is one secret redacted by the mask command
type MaskedSecret struct {
	Masked string `json:"masked"`
	Secret string `json:"secret"`
	Line   int    `json:"line"` // 1-based
}

// MaskResult holds the redacted secrets and the full redacted file content
type MaskResult struct {
	MaskedSecrets []MaskedSecret `json:"maskedSecrets"`
	MaskedFile    string         `json:"maskedFile"`
}

// NewMaskResult builds a MaskResult whose secrets list is never nil
func NewMaskResult(secrets []MaskedSecret, maskedFile string) *MaskResult {
	return &MaskResult{
		MaskedSecrets: nonNil(secrets),
		MaskedFile:    maskedFile,
	}
}
