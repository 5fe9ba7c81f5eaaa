package dto

// CampusInfoResponse is the payload of GET /campus-info.
type CampusInfoResponse struct {
	AcademicCalendarURL string `json:"academicCalendarUrl"`
	SyllabusURL         string `json:"syllabusUrl"`
}

// UpsertCampusInfoRequest is the body of PUT /campus-info, the
// reference-data maintenance endpoint.
type UpsertCampusInfoRequest struct {
	Regulation          string `json:"regulation" binding:"required" example:"VR20"`
	Department          string `json:"department" binding:"required" example:"IT"`
	AcademicCalendarURL string `json:"academicCalendarUrl" binding:"required"`
	SyllabusURL         string `json:"syllabusUrl" binding:"required"`
}
