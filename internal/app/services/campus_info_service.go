package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/campusconn/backend/internal/app/models"
	"github.com/campusconn/backend/internal/app/models/dto"
	"github.com/campusconn/backend/internal/pkg/apperrors"
	"github.com/campusconn/backend/internal/pkg/cache"
)

// CampusInfoService resolves the campus reference data for one
// (regulation, department) pair. Reads go through an optional Redis
// cache; the database is always authoritative.
type CampusInfoService struct {
	campusInfoStore CampusInfoStore
	cache           *cache.Cache
}

// NewCampusInfoService creates a new campus info service instance
func NewCampusInfoService(campusInfoStore CampusInfoStore, c *cache.Cache) *CampusInfoService {
	return &CampusInfoService{
		campusInfoStore: campusInfoStore,
		cache:           c,
	}
}

func campusInfoCacheKey(regulation, department string) string {
	return fmt.Sprintf("campus-info:%s:%s", regulation, department)
}

// Resolve returns the resource URLs for the pair, or
// ErrCampusInfoNotFound for an unrecognized pair.
func (s *CampusInfoService) Resolve(ctx context.Context, regulation, department string) (*models.CampusInfo, error) {
	regulation = strings.TrimSpace(regulation)
	department = strings.TrimSpace(department)
	if regulation == "" || department == "" {
		return nil, apperrors.NewValidationError("regulation and department are required")
	}

	key := campusInfoCacheKey(regulation, department)
	var cached models.CampusInfo
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	info, err := s.campusInfoStore.Get(ctx, regulation, department)
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, key, info)
	return info, nil
}

// Upsert creates or replaces the reference row and drops the cached copy.
func (s *CampusInfoService) Upsert(ctx context.Context, req *dto.UpsertCampusInfoRequest) (*models.CampusInfo, error) {
	info := &models.CampusInfo{
		Regulation:          strings.TrimSpace(req.Regulation),
		Department:          strings.TrimSpace(req.Department),
		AcademicCalendarURL: strings.TrimSpace(req.AcademicCalendarURL),
		SyllabusURL:         strings.TrimSpace(req.SyllabusURL),
	}

	if info.Regulation == "" || info.Department == "" || info.AcademicCalendarURL == "" || info.SyllabusURL == "" {
		return nil, apperrors.NewValidationError("regulation, department and both urls are required")
	}

	if err := s.campusInfoStore.Upsert(ctx, info); err != nil {
		return nil, err
	}

	s.cache.Delete(ctx, campusInfoCacheKey(info.Regulation, info.Department))
	return info, nil
}
