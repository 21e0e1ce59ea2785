package service

import (
	"context"
	"encoding/json"
	"strconv"

	"rate-normalizer/domain"
	"rate-normalizer/logger"
	"rate-normalizer/repository"
)

const termInfoKeyPrefix = "term-info:"

// RateService normalizes scraped rate records for the ingestion pipeline.
type RateService struct {
	cache      repository.CacheRepository
	quarantine repository.QuarantineRepository
	log        logger.Logger
}

// NewRateService creates a new RateService with the given repositories.
func NewRateService(
	cache repository.CacheRepository,
	quarantine repository.QuarantineRepository,
	log logger.Logger,
) *RateService {
	return &RateService{cache: cache, quarantine: quarantine, log: log}
}

// NormalizeRecord normalizes a single record. Errors wrap
// domain.ErrInvalidArgument or domain.ErrMissingField.
func (s *RateService) NormalizeRecord(record domain.RateRecord) (domain.RateRecord, error) {
	result, err := NormalizeRateTerms(record)
	if err != nil {
		return nil, err
	}

	s.log.Debug("registro normalizado",
		"term_range_min", result[domain.FieldTermRangeMin],
		"term_range_max", result[domain.FieldTermRangeMax],
		"term_label", result[domain.FieldTermLabel],
	)
	return result, nil
}

// NormalizeBatch normalizes every record, keeping the order of the ones that
// succeed. Rejected records are reported with their index and quarantined;
// they are never retried.
func (s *RateService) NormalizeBatch(records []domain.RateRecord) domain.BatchResult {
	result := domain.BatchResult{
		Normalized: make([]domain.RateRecord, 0, len(records)),
		Rejected:   []domain.RejectedRecord{},
	}

	for i, record := range records {
		normalized, err := s.NormalizeRecord(record)
		if err != nil {
			rejected := domain.RejectedRecord{
				Index:  i,
				Record: record,
				Reason: err.Error(),
			}
			result.Rejected = append(result.Rejected, rejected)

			s.log.Warn("registro en cuarentena", "index", i, "reason", err)
			// Guardar en cuarentena (no crítico si falla)
			if err := s.quarantine.Save(rejected); err != nil {
				s.log.Warn("failed to quarantine record", "index", i, "error", err)
			}
			continue
		}
		result.Normalized = append(result.Normalized, normalized)
	}

	s.log.Info("lote normalizado",
		"total", len(records),
		"normalized", len(result.Normalized),
		"rejected", len(result.Rejected),
	)
	return result
}

// Quarantined returns the records rejected so far.
func (s *RateService) Quarantined() []domain.RejectedRecord {
	return s.quarantine.List()
}

// TermInfo returns the normalization diagnostics for term, served from the
// cache when possible.
func (s *RateService) TermInfo(ctx context.Context, term int) (domain.NormalizationInfo, error) {
	key := termInfoKeyPrefix + strconv.Itoa(term)

	if cached, ok := s.cache.Get(ctx, key); ok {
		var info domain.NormalizationInfo
		if err := json.Unmarshal([]byte(cached), &info); err == nil {
			return info, nil
		}
		s.log.Warn("ignoring malformed cache entry", "key", key)
	}

	info, err := TermNormalizationInfo(term)
	if err != nil {
		return domain.NormalizationInfo{}, err
	}

	// Guardar en caché (no crítico si falla)
	if payload, err := json.Marshal(info); err == nil {
		if err := s.cache.Set(ctx, key, string(payload)); err != nil {
			s.log.Warn("failed to cache term info", "key", key, "error", err)
		}
	}

	return info, nil
}

// NormalizeRange normalizes an explicit range and labels it.
func (s *RateService) NormalizeRange(termMin, termMax int) (domain.TermRange, error) {
	normalizedMin, normalizedMax, err := NormalizeTermRange(termMin, termMax)
	if err != nil {
		return domain.TermRange{}, err
	}
	return domain.TermRange{
		Min:   normalizedMin,
		Max:   normalizedMax,
		Label: TermLabel(normalizedMin, normalizedMax),
	}, nil
}
