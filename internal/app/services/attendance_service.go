package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/briankip/cams/internal/app/models"
	"github.com/briankip/cams/internal/app/models/dto"
	"github.com/briankip/cams/internal/app/repositories"
	"github.com/briankip/cams/internal/pkg/apperrors"
)

// AttendanceService handles attendance recording and reporting
type AttendanceService struct {
	attendanceRepo repositories.IAttendanceRepository
	userRepo       repositories.IUserRepository
	logger         zerolog.Logger
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(
	attendanceRepo repositories.IAttendanceRepository,
	userRepo repositories.IUserRepository,
	logger zerolog.Logger,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

// SaveAttendance persists one session's batch of attendance marks.
func (s *AttendanceService) SaveAttendance(ctx context.Context, entries dto.SaveAttendanceRequest) error {
	if len(entries) == 0 {
		return apperrors.NewValidationError("Attendance records are required.")
	}

	records := make([]*models.AttendanceRecord, 0, len(entries))
	for _, entry := range entries {
		records = append(records, &models.AttendanceRecord{
			RegNo:    entry.RegNo,
			UnitCode: entry.UnitCode,
			Date:     entry.Date,
			Status:   entry.Status,
		})
	}

	if err := s.attendanceRepo.SaveBatch(ctx, records); err != nil {
		return apperrors.NewPersistenceError(err, "Failed to save attendance.")
	}

	s.logger.Info().Int("records", len(records)).Msg("Attendance saved")
	return nil
}

// GetStudentsByClass lists the students (including class reps) of a class.
func (s *AttendanceService) GetStudentsByClass(ctx context.Context, classID int64) ([]*models.User, error) {
	if classID <= 0 {
		return nil, apperrors.NewValidationError("Class ID is required.")
	}

	students, err := s.userRepo.GetStudentsByClass(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// GetClassSummary computes per-student attendance percentages for a class.
func (s *AttendanceService) GetClassSummary(ctx context.Context, classID int64) ([]*models.AttendanceSummary, error) {
	if classID <= 0 {
		return nil, apperrors.NewValidationError("Class ID is required.")
	}

	summary, err := s.attendanceRepo.GetSummaryByClass(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attendance summary: %w", err)
	}
	return summary, nil
}
