package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusconn/backend/internal/app/models"
	"github.com/campusconn/backend/internal/pkg/apperrors"
)

// CampusInfoRepository handles database operations for the campus-info
// reference table, keyed by (regulation, department).
type CampusInfoRepository struct {
	db *pgxpool.Pool
}

// NewCampusInfoRepository creates a new CampusInfoRepository
func NewCampusInfoRepository(db *pgxpool.Pool) *CampusInfoRepository {
	return &CampusInfoRepository{db: db}
}

// Get retrieves the resource URLs for one (regulation, department) pair.
// An unknown pair is a NotFound, never an empty payload.
func (r *CampusInfoRepository) Get(ctx context.Context, regulation, department string) (*models.CampusInfo, error) {
	query := `
		SELECT regulation, department, academic_calendar_url, syllabus_url
		FROM campus_info
		WHERE regulation = $1 AND department = $2
	`

	var info models.CampusInfo
	err := r.db.QueryRow(ctx, query, regulation, department).Scan(
		&info.Regulation,
		&info.Department,
		&info.AcademicCalendarURL,
		&info.SyllabusURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCampusInfoNotFound
		}
		return nil, fmt.Errorf("error retrieving campus info: %w", err)
	}
	return &info, nil
}

// Upsert creates or replaces the reference row for one pair.
func (r *CampusInfoRepository) Upsert(ctx context.Context, info *models.CampusInfo) error {
	query := `
		INSERT INTO campus_info (regulation, department, academic_calendar_url, syllabus_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (regulation, department) DO UPDATE
		SET academic_calendar_url = EXCLUDED.academic_calendar_url,
		    syllabus_url = EXCLUDED.syllabus_url
	`

	_, err := r.db.Exec(ctx, query,
		info.Regulation, info.Department, info.AcademicCalendarURL, info.SyllabusURL)
	if err != nil {
		return fmt.Errorf("error upserting campus info: %w", err)
	}
	return nil
}
