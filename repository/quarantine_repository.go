package repository

import "rate-normalizer/domain"

// QuarantineRepository holds records rejected during normalization so the
// ingestion pipeline can inspect them instead of retrying.
type QuarantineRepository interface {
	Save(record domain.RejectedRecord) error
	List() []domain.RejectedRecord
}
