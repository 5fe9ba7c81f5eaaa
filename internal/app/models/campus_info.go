package models

// CampusInfo holds the resource URLs for one (regulation, department)
// pair. Reference data, maintained outside normal user flows.
type CampusInfo struct {
	Regulation          string `json:"regulation" db:"regulation" example:"VR20"`
	Department          string `json:"department" db:"department" example:"IT"`
	AcademicCalendarURL string `json:"academicCalendarUrl" db:"academic_calendar_url"`
	SyllabusURL         string `json:"syllabusUrl" db:"syllabus_url"`
}
