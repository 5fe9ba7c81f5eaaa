package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/campusconn/backend/internal/app/models"
	"github.com/campusconn/backend/internal/app/models/dto"
	"github.com/campusconn/backend/internal/pkg/apperrors"
)

func TestResolve_RequiresBothKeys(t *testing.T) {
	store := new(mockCampusInfoStore)
	service := NewCampusInfoService(store, nil)

	_, err := service.Resolve(context.Background(), "", "IT")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = service.Resolve(context.Background(), "VR20", "  ")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	store.AssertNotCalled(t, "Get")
}

func TestResolve_UnknownPair(t *testing.T) {
	store := new(mockCampusInfoStore)
	store.On("Get", mock.Anything, "VR20", "MECH").Return(nil, apperrors.ErrCampusInfoNotFound)

	service := NewCampusInfoService(store, nil)
	_, err := service.Resolve(context.Background(), "VR20", "MECH")

	assert.ErrorIs(t, err, apperrors.ErrCampusInfoNotFound)
}

func TestResolve_WithoutCacheHitsStoreEveryTime(t *testing.T) {
	// A nil cache behaves as a permanent miss; reads always fall through.
	info := &models.CampusInfo{
		Regulation:          "VR20",
		Department:          "IT",
		AcademicCalendarURL: "https://cdn.example.com/cal.pdf",
		SyllabusURL:         "https://cdn.example.com/syl.pdf",
	}

	store := new(mockCampusInfoStore)
	store.On("Get", mock.Anything, "VR20", "IT").Return(info, nil).Twice()

	service := NewCampusInfoService(store, nil)
	for i := 0; i < 2; i++ {
		got, err := service.Resolve(context.Background(), " VR20 ", " IT ")
		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/cal.pdf", got.AcademicCalendarURL)
	}

	store.AssertExpectations(t)
}

func TestUpsert_RequiresAllFields(t *testing.T) {
	store := new(mockCampusInfoStore)
	service := NewCampusInfoService(store, nil)

	_, err := service.Upsert(context.Background(), &dto.UpsertCampusInfoRequest{
		Regulation: "VR20",
		Department: "IT",
	})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	store.AssertNotCalled(t, "Upsert")
}

func TestUpsert_TrimsAndStores(t *testing.T) {
	store := new(mockCampusInfoStore)
	store.On("Upsert", mock.Anything, mock.MatchedBy(func(info *models.CampusInfo) bool {
		return info.Regulation == "VR20" && info.Department == "IT"
	})).Return(nil)

	service := NewCampusInfoService(store, nil)
	info, err := service.Upsert(context.Background(), &dto.UpsertCampusInfoRequest{
		Regulation:          " VR20 ",
		Department:          " IT ",
		AcademicCalendarURL: "https://cdn.example.com/cal.pdf",
		SyllabusURL:         "https://cdn.example.com/syl.pdf",
	})

	assert.NoError(t, err)
	assert.Equal(t, "VR20", info.Regulation)
	store.AssertExpectations(t)
}
