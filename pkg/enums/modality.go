package enums

import (
	"fmt"
	"strings"
)

// Modality describes where a vacancy's work happens.
type Modality string

const (
	ModalityRemote Modality = "remote"
	ModalityOffice Modality = "office"
	ModalityHybrid Modality = "hybrid"
)

var validModalities = []Modality{
	ModalityRemote,
	ModalityOffice,
	ModalityHybrid,
}

// String implements fmt.Stringer.
func (m Modality) String() string {
	return string(m)
}

// IsValid reports whether the value is a known Modality.
func (m Modality) IsValid() bool {
	for _, candidate := range validModalities {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseModality converts raw input into a Modality.
func ParseModality(value string) (Modality, error) {
	normalized := Modality(strings.ToLower(strings.TrimSpace(value)))
	if normalized.IsValid() {
		return normalized, nil
	}
	return "", fmt.Errorf("invalid modality %q", value)
}
