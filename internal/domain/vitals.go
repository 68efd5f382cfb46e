package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type Vitals struct {
	ID                     int64     `json:"id"`
	UserID                 uuid.UUID `json:"user_id"`
	HeartRate              int       `json:"heart_rate"`
	Temperature            float64   `json:"temperature"`
	SpO2                   int       `json:"spo2"`
	BloodPressureSystolic  int       `json:"blood_pressure_systolic"`
	BloodPressureDiastolic int       `json:"blood_pressure_diastolic"`
	Notes                  *string   `json:"notes"`
	CreatedAt              time.Time `json:"created_at"`
}

// VitalsInput is the caller-supplied part of a vitals entry.
type VitalsInput struct {
	HeartRate              int
	Temperature            float64
	SpO2                   int
	BloodPressureSystolic  int
	BloodPressureDiastolic int
	Notes                  *string
}

// Validate rejects readings that do not fit the stored integer columns.
func (in VitalsInput) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"heart_rate", in.HeartRate},
		{"spo2", in.SpO2},
		{"blood_pressure_systolic", in.BloodPressureSystolic},
		{"blood_pressure_diastolic", in.BloodPressureDiastolic},
	}
	for _, f := range fields {
		if f.value < math.MinInt32 || f.value > math.MaxInt32 {
			return BadInput("%s out of range: %d", f.name, f.value)
		}
	}
	return nil
}

// VitalsSummary reports the latest values over the most recent entries only.
type VitalsSummary struct {
	TotalEntries        int      `json:"total_entries"`
	LatestHeartRate     *int     `json:"latest_heart_rate"`
	LatestTemperature   *float64 `json:"latest_temperature"`
	LatestSpO2          *int     `json:"latest_spo2"`
	LatestBloodPressure *string  `json:"latest_blood_pressure"`
}
