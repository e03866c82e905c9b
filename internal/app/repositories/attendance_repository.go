package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/briankip/cams/internal/app/models"
)

// IAttendanceRepository defines database operations for attendance records
type IAttendanceRepository interface {
	SaveBatch(ctx context.Context, records []*models.AttendanceRecord) error
	GetSummaryByClass(ctx context.Context, classID int64) ([]*models.AttendanceSummary, error)
}

// AttendanceRepository handles attendance database operations
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
	}
}

// SaveBatch inserts one session's attendance marks in a single transaction.
func (r *AttendanceRepository) SaveBatch(ctx context.Context, records []*models.AttendanceRecord) error {
	batch := &pgx.Batch{}
	for _, record := range records {
		batch.Queue(`
			INSERT INTO attendance (reg_no, unit_code, date, status)
			VALUES ($1, $2, $3, $4)`,
			record.RegNo, record.UnitCode, record.Date, record.Status)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range records {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("error saving attendance: %w", err)
		}
	}

	return nil
}

// GetSummaryByClass computes the attendance percentage per student for a
// class, joining marks to users by registration number.
func (r *AttendanceRepository) GetSummaryByClass(ctx context.Context, classID int64) ([]*models.AttendanceSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT u.name,
		       ROUND(SUM(CASE WHEN a.status = 'Present' THEN 1 ELSE 0 END)::numeric / COUNT(*) * 100, 2) AS attendance
		FROM attendance a
		JOIN users u ON a.reg_no = u.registration_number
		WHERE u.class_id = $1
		GROUP BY u.name
		ORDER BY u.name`,
		classID)
	if err != nil {
		return nil, fmt.Errorf("error computing attendance summary: %w", err)
	}
	defer rows.Close()

	var summaries []*models.AttendanceSummary
	for rows.Next() {
		var summary models.AttendanceSummary
		if err := rows.Scan(&summary.Name, &summary.Attendance); err != nil {
			return nil, err
		}
		summaries = append(summaries, &summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
