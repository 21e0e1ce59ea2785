package service

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"

	"rate-normalizer/domain"
)

// NormalizeRateTerms returns a copy of record with term_range_min,
// term_range_max and term_label set. The record must carry either termMonths
// or both termMin and termMax; termMonths wins when both shapes are present.
// The input record is never modified.
func NormalizeRateTerms(record domain.RateRecord) (domain.RateRecord, error) {
	termRange, err := NormalizeRecordTerms(record)
	if err != nil {
		return nil, err
	}

	result := maps.Clone(record)
	if result == nil {
		result = domain.RateRecord{}
	}
	result[domain.FieldTermRangeMin] = termRange.Min
	result[domain.FieldTermRangeMax] = termRange.Max
	result[domain.FieldTermLabel] = termRange.Label

	return result, nil
}

// NormalizeRecordTerms resolves the normalized range of record without
// building the output record.
func NormalizeRecordTerms(record domain.RateRecord) (domain.TermRange, error) {
	var termMin, termMax int

	if raw, ok := record[domain.FieldTermMonths]; ok {
		// Plazo exacto
		term, err := termValue(domain.FieldTermMonths, raw)
		if err != nil {
			return domain.TermRange{}, err
		}
		normalized, err := NormalizeTerm(term)
		if err != nil {
			return domain.TermRange{}, err
		}
		termMin, termMax = normalized, normalized
	} else {
		rawMin, hasMin := record[domain.FieldTermMin]
		rawMax, hasMax := record[domain.FieldTermMax]
		if !hasMin || !hasMax {
			return domain.TermRange{}, fmt.Errorf("%w: el registro debe incluir %s o %s/%s",
				domain.ErrMissingField, domain.FieldTermMonths, domain.FieldTermMin, domain.FieldTermMax)
		}

		// Rango de plazos
		rangeMin, err := termValue(domain.FieldTermMin, rawMin)
		if err != nil {
			return domain.TermRange{}, err
		}
		rangeMax, err := termValue(domain.FieldTermMax, rawMax)
		if err != nil {
			return domain.TermRange{}, err
		}
		termMin, termMax, err = NormalizeTermRange(rangeMin, rangeMax)
		if err != nil {
			return domain.TermRange{}, err
		}
	}

	return domain.TermRange{
		Min:   termMin,
		Max:   termMax,
		Label: TermLabel(termMin, termMax),
	}, nil
}

// termValue accepts the integer shapes a record can carry: Go integers,
// integral floats (encoding/json default) and json.Number (UseNumber).
func termValue(field string, raw any) (int, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, fmt.Errorf("%w: %s=%v no es un número entero", domain.ErrInvalidArgument, field, v)
		}
		return int(v), nil
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n), nil
		}
		f, err := v.Float64()
		if err != nil || f != math.Trunc(f) {
			return 0, fmt.Errorf("%w: %s=%s no es un número entero", domain.ErrInvalidArgument, field, v)
		}
		return int(f), nil
	default:
		return 0, fmt.Errorf("%w: %s tiene tipo %T, se esperaba un entero", domain.ErrInvalidArgument, field, raw)
	}
}
