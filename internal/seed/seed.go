package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/campusconn/backend/internal/app/models"
	appRepos "github.com/campusconn/backend/internal/app/repositories"
)

// defaultCampusInfo is the reference data shipped with a fresh install so
// the campus-info endpoint answers before an operator maintains the rows.
var defaultCampusInfo = []*appModels.CampusInfo{
	{
		Regulation:          "VR20",
		Department:          "CSE",
		AcademicCalendarURL: "https://cdn.campusconn.app/calendars/vr20.pdf",
		SyllabusURL:         "https://cdn.campusconn.app/syllabus/vr20-cse.pdf",
	},
	{
		Regulation:          "VR20",
		Department:          "IT",
		AcademicCalendarURL: "https://cdn.campusconn.app/calendars/vr20.pdf",
		SyllabusURL:         "https://cdn.campusconn.app/syllabus/vr20-it.pdf",
	},
	{
		Regulation:          "VR20",
		Department:          "ECE",
		AcademicCalendarURL: "https://cdn.campusconn.app/calendars/vr20.pdf",
		SyllabusURL:         "https://cdn.campusconn.app/syllabus/vr20-ece.pdf",
	},
	{
		Regulation:          "VR23",
		Department:          "CSE",
		AcademicCalendarURL: "https://cdn.campusconn.app/calendars/vr23.pdf",
		SyllabusURL:         "https://cdn.campusconn.app/syllabus/vr23-cse.pdf",
	},
	{
		Regulation:          "VR23",
		Department:          "IT",
		AcademicCalendarURL: "https://cdn.campusconn.app/calendars/vr23.pdf",
		SyllabusURL:         "https://cdn.campusconn.app/syllabus/vr23-it.pdf",
	},
}

// CreateDefaultData upserts the default campus reference rows. Errors are
// collected and returned together; a partial seed is not fatal.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	campusInfoRepo := appRepos.NewCampusInfoRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default campus info rows...")
	var finalErr error

	for _, info := range defaultCampusInfo {
		if err := campusInfoRepo.Upsert(ctx, info); err != nil {
			lgr.Error().Err(err).
				Str("regulation", info.Regulation).
				Str("department", info.Department).
				Msg("Error seeding campus info row")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
