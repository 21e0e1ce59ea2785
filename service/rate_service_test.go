package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rate-normalizer/domain"
	"rate-normalizer/logger"
	"rate-normalizer/repository"
)

type MockQuarantineRepository struct {
	Saved      []domain.RejectedRecord
	ForceError bool
}

func (m *MockQuarantineRepository) Save(record domain.RejectedRecord) error {
	if m.ForceError {
		return errors.New("save error")
	}
	m.Saved = append(m.Saved, record)
	return nil
}

func (m *MockQuarantineRepository) List() []domain.RejectedRecord {
	return m.Saved
}

type MockCache struct {
	Data       map[string]string
	Gets       int
	ForceError bool
}

func (m *MockCache) Get(_ context.Context, key string) (string, bool) {
	m.Gets++
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(_ context.Context, key string, value string) error {
	if m.ForceError {
		return errors.New("set error")
	}
	m.Data[key] = value
	return nil
}

func newTestService(cache repository.CacheRepository, quarantine repository.QuarantineRepository) *RateService {
	return NewRateService(cache, quarantine, logger.NewForTests())
}

func TestNormalizeRecord(t *testing.T) {
	service := newTestService(repository.NewMemoryCache(), &MockQuarantineRepository{})

	got, err := service.NormalizeRecord(domain.RateRecord{"termMonths": 66, "apr": 5.99})

	require.NoError(t, err)
	assert.Equal(t, 60, got["term_range_min"])
	assert.Equal(t, "60 Months", got["term_label"])
}

func TestNormalizeRecord_MissingField(t *testing.T) {
	quarantine := &MockQuarantineRepository{}
	service := newTestService(repository.NewMemoryCache(), quarantine)

	_, err := service.NormalizeRecord(domain.RateRecord{"apr": 3.5})

	assert.ErrorIs(t, err, domain.ErrMissingField)
	if len(quarantine.Saved) != 0 {
		t.Errorf("single record errors should NOT be quarantined")
	}
}

func TestNormalizeBatch(t *testing.T) {
	t.Run("Should keep order and quarantine rejected records", func(t *testing.T) {
		quarantine := &MockQuarantineRepository{}
		service := newTestService(repository.NewMemoryCache(), quarantine)

		result := service.NormalizeBatch([]domain.RateRecord{
			{"termMonths": 48, "source": "SCCU"},
			{"apr": 3.5},
			{"termMin": 37, "termMax": 60, "source": "NFCU"},
			{"termMin": 10, "termMax": 5},
		})

		require.Len(t, result.Normalized, 2)
		assert.Equal(t, "SCCU", result.Normalized[0]["source"])
		assert.Equal(t, "NFCU", result.Normalized[1]["source"])

		require.Len(t, result.Rejected, 2)
		assert.Equal(t, 1, result.Rejected[0].Index)
		assert.Contains(t, result.Rejected[0].Reason, domain.ErrMissingField.Error())
		assert.Equal(t, 3, result.Rejected[1].Index)
		assert.Contains(t, result.Rejected[1].Reason, domain.ErrInvalidArgument.Error())

		assert.Equal(t, result.Rejected, quarantine.Saved)
		assert.Equal(t, result.Rejected, service.Quarantined())
	})

	t.Run("Should not fail when quarantine save fails", func(t *testing.T) {
		service := newTestService(repository.NewMemoryCache(), &MockQuarantineRepository{ForceError: true})

		result := service.NormalizeBatch([]domain.RateRecord{{"apr": 1.0}})

		assert.Empty(t, result.Normalized)
		assert.Len(t, result.Rejected, 1)
	})

	t.Run("Should return empty slices for an empty batch", func(t *testing.T) {
		service := newTestService(repository.NewMemoryCache(), &MockQuarantineRepository{})

		result := service.NormalizeBatch(nil)

		assert.NotNil(t, result.Normalized)
		assert.NotNil(t, result.Rejected)
	})
}

func TestTermInfo(t *testing.T) {
	t.Run("Should compute and cache info", func(t *testing.T) {
		cache := &MockCache{Data: map[string]string{}}
		service := newTestService(cache, &MockQuarantineRepository{})

		info, err := service.TermInfo(t.Context(), 66)
		require.NoError(t, err)
		assert.Equal(t, domain.NormalizationInfo{Original: 66, Normalized: 60, Distance: 6, WasModified: true}, info)
		assert.JSONEq(t, `{"original":66,"normalized":60,"distance":6,"wasModified":true}`, cache.Data["term-info:66"])
	})

	t.Run("Should serve cached info", func(t *testing.T) {
		cache := &MockCache{Data: map[string]string{
			"term-info:75": `{"original":75,"normalized":72,"distance":3,"wasModified":true}`,
		}}
		service := newTestService(cache, &MockQuarantineRepository{})

		info, err := service.TermInfo(t.Context(), 75)
		require.NoError(t, err)
		assert.Equal(t, 72, info.Normalized)
		assert.Equal(t, 1, cache.Gets)
	})

	t.Run("Should recompute over a malformed cache entry", func(t *testing.T) {
		cache := &MockCache{Data: map[string]string{"term-info:84": "not json"}}
		service := newTestService(cache, &MockQuarantineRepository{})

		info, err := service.TermInfo(t.Context(), 84)
		require.NoError(t, err)
		assert.False(t, info.WasModified)
	})

	t.Run("Should ignore cache write errors", func(t *testing.T) {
		cache := &MockCache{Data: map[string]string{}, ForceError: true}
		service := newTestService(cache, &MockQuarantineRepository{})

		info, err := service.TermInfo(t.Context(), 48)
		require.NoError(t, err)
		assert.Equal(t, 48, info.Normalized)
	})

	t.Run("Should reject negative terms without caching", func(t *testing.T) {
		cache := &MockCache{Data: map[string]string{}}
		service := newTestService(cache, &MockQuarantineRepository{})

		_, err := service.TermInfo(t.Context(), -1)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		assert.Empty(t, cache.Data)
	})
}

func TestNormalizeRange(t *testing.T) {
	service := newTestService(repository.NewMemoryCache(), &MockQuarantineRepository{})

	got, err := service.NormalizeRange(61, 75)
	require.NoError(t, err)
	assert.Equal(t, domain.TermRange{Min: 60, Max: 72, Label: "60-72 Months"}, got)

	_, err = service.NormalizeRange(10, 5)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
