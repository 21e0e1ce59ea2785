package service

import (
	"fmt"

	"rate-normalizer/domain"
)

// NormalizeTerm maps a term in months to the nearest industry-standard term.
// Ties go to the shorter term. A zero term maps to the shortest standard
// term; negative terms are rejected with domain.ErrInvalidArgument.
func NormalizeTerm(term int) (int, error) {
	if term < 0 {
		return 0, fmt.Errorf("%w: plazo %d, debe ser un número no negativo", domain.ErrInvalidArgument, term)
	}
	// 0 meses se asigna al plazo estándar más corto
	if term == 0 {
		return standardTerms[0], nil
	}

	nearest := standardTerms[0]
	minDistance := absInt(term - nearest)

	for _, candidate := range standardTerms[1:] {
		distance := absInt(term - candidate)
		// En empate se prefiere el plazo más corto (más conservador)
		if distance < minDistance || (distance == minDistance && candidate < nearest) {
			minDistance = distance
			nearest = candidate
		}
	}

	return nearest, nil
}

// NormalizeTermRange normalizes both ends of an inclusive term range.
func NormalizeTermRange(termMin, termMax int) (int, int, error) {
	if termMin > termMax {
		return 0, 0, fmt.Errorf("%w: rango inválido, mínimo (%d) > máximo (%d)", domain.ErrInvalidArgument, termMin, termMax)
	}

	normalizedMin, err := NormalizeTerm(termMin)
	if err != nil {
		return 0, 0, err
	}
	normalizedMax, err := NormalizeTerm(termMax)
	if err != nil {
		return 0, 0, err
	}

	return normalizedMin, normalizedMax, nil
}

// IsStandardTerm reports whether term is exactly one of the standard terms.
func IsStandardTerm(term int) bool {
	for _, standard := range standardTerms {
		if term == standard {
			return true
		}
	}
	return false
}

// TermNormalizationInfo describes how NormalizeTerm treats term.
func TermNormalizationInfo(term int) (domain.NormalizationInfo, error) {
	normalized, err := NormalizeTerm(term)
	if err != nil {
		return domain.NormalizationInfo{}, err
	}

	return domain.NormalizationInfo{
		Original:    term,
		Normalized:  normalized,
		Distance:    absInt(term - normalized),
		WasModified: term != normalized,
	}, nil
}

// TermLabel formats a normalized range for display.
func TermLabel(termMin, termMax int) string {
	if termMin == termMax {
		return fmt.Sprintf("%d Months", termMin)
	}
	return fmt.Sprintf("%d-%d Months", termMin, termMax)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
