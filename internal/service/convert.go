package service

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/set-night/healthdash/internal/domain"
	"github.com/set-night/healthdash/internal/repository/sqlc"
	"github.com/shopspring/decimal"
)

// pgTimestamptzToTime converts pgtype.Timestamptz to time.Time.
func pgTimestamptzToTime(ts pgtype.Timestamptz) time.Time {
	if ts.Valid {
		return ts.Time
	}
	return time.Time{}
}

// timeToPgTimestamptz converts time.Time to pgtype.Timestamptz.
func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: !t.IsZero()}
}

// decimalToFloat converts decimal.Decimal to float64.
func decimalToFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

func rowToVitals(row sqlc.Vital) domain.Vitals {
	return domain.Vitals{
		ID:                     row.ID,
		UserID:                 row.UserID,
		HeartRate:              int(row.HeartRate),
		Temperature:            decimalToFloat(row.Temperature),
		SpO2:                   int(row.Spo2),
		BloodPressureSystolic:  int(row.BloodPressureSystolic),
		BloodPressureDiastolic: int(row.BloodPressureDiastolic),
		Notes:                  row.Notes,
		CreatedAt:              pgTimestamptzToTime(row.CreatedAt),
	}
}

func rowToDocument(row sqlc.Document) domain.Document {
	return domain.Document{
		ID:            row.ID,
		UserID:        row.UserID,
		FileName:      row.FileName,
		FileURL:       row.FileUrl,
		FileSize:      row.FileSize,
		FileType:      row.FileType,
		ExtractedText: row.ExtractedText,
		CreatedAt:     pgTimestamptzToTime(row.CreatedAt),
	}
}
