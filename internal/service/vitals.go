package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/set-night/healthdash/internal/config"
	"github.com/set-night/healthdash/internal/domain"
	"github.com/set-night/healthdash/internal/repository/sqlc"
	"github.com/shopspring/decimal"
)

type VitalsService struct {
	queries sqlc.Querier
	now     func() time.Time
}

func NewVitalsService(queries sqlc.Querier) *VitalsService {
	return &VitalsService{queries: queries, now: time.Now}
}

// List returns every entry of the user, newest first.
func (s *VitalsService) List(ctx context.Context, userID uuid.UUID) ([]domain.Vitals, error) {
	rows, err := s.queries.ListVitalsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch vitals: %w", err)
	}
	vitals := make([]domain.Vitals, len(rows))
	for i, r := range rows {
		vitals[i] = rowToVitals(r)
	}
	return vitals, nil
}

func (s *VitalsService) Create(ctx context.Context, userID uuid.UUID, in domain.VitalsInput) (*domain.Vitals, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	row, err := s.queries.CreateVitals(ctx, sqlc.CreateVitalsParams{
		UserID:                 userID,
		HeartRate:              int32(in.HeartRate),
		Temperature:            decimal.NewFromFloat(in.Temperature),
		Spo2:                   int32(in.SpO2),
		BloodPressureSystolic:  int32(in.BloodPressureSystolic),
		BloodPressureDiastolic: int32(in.BloodPressureDiastolic),
		Notes:                  in.Notes,
		CreatedAt:              timeToPgTimestamptz(s.now().UTC()),
	})
	if err != nil {
		return nil, fmt.Errorf("create vitals: %w", err)
	}
	v := rowToVitals(row)
	return &v, nil
}

// Delete removes one entry. Entries owned by someone else look absent.
func (s *VitalsService) Delete(ctx context.Context, userID uuid.UUID, id int64) error {
	n, err := s.queries.DeleteVitalsForUser(ctx, sqlc.DeleteVitalsForUserParams{
		ID:     id,
		UserID: userID,
	})
	if err != nil {
		return fmt.Errorf("delete vitals: %w", err)
	}
	if n == 0 {
		return domain.ErrVitalsNotFound
	}
	return nil
}

// Summary reports the count and latest values over the newest
// config.VitalsSummaryWindow entries, not over the full history.
func (s *VitalsService) Summary(ctx context.Context, userID uuid.UUID) (*domain.VitalsSummary, error) {
	rows, err := s.queries.ListRecentVitalsByUser(ctx, sqlc.ListRecentVitalsByUserParams{
		UserID: userID,
		Limit:  config.VitalsSummaryWindow,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch vitals summary: %w", err)
	}

	summary := &domain.VitalsSummary{TotalEntries: len(rows)}
	if len(rows) == 0 {
		return summary, nil
	}

	latest := rowToVitals(rows[0])
	bp := fmt.Sprintf("%d/%d", latest.BloodPressureSystolic, latest.BloodPressureDiastolic)
	summary.LatestHeartRate = &latest.HeartRate
	summary.LatestTemperature = &latest.Temperature
	summary.LatestSpO2 = &latest.SpO2
	summary.LatestBloodPressure = &bp
	return summary, nil
}
