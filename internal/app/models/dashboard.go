package models

// DashboardCategory identifies one academic-performance sub-field on a
// user profile. Each category has its own merge rule: scalar categories
// overwrite the stored value, the grades map merges key by key, list
// categories append.
type DashboardCategory string

const (
	CategoryGPA                 DashboardCategory = "gpa"
	CategoryAttendance          DashboardCategory = "attendance"
	CategoryGrades              DashboardCategory = "grades"
	CategoryUpcomingAssignments DashboardCategory = "upcomingAssignments"
	CategoryUpcomingExams       DashboardCategory = "upcomingExams"
	CategoryAchievements        DashboardCategory = "achievements"
	CategoryCertificates        DashboardCategory = "certificates"
	CategoryExtracurricular     DashboardCategory = "extracurricularActivities"
)

// IsValid reports whether c names a known dashboard category.
func (c DashboardCategory) IsValid() bool {
	switch c {
	case CategoryGPA, CategoryAttendance, CategoryGrades,
		CategoryUpcomingAssignments, CategoryUpcomingExams,
		CategoryAchievements, CategoryCertificates, CategoryExtracurricular:
		return true
	}
	return false
}

// IsScalar reports whether the category overwrites rather than merges.
func (c DashboardCategory) IsScalar() bool {
	return c == CategoryGPA || c == CategoryAttendance
}

// Dashboard defines the academic-performance bundle stored in the
// 'user_dashboards' table, 1:1 with users.
type Dashboard struct {
	UserID              int64                    `json:"-" db:"user_id"`
	GPA                 *float64                 `json:"gpa,omitempty" db:"gpa" example:"8.4"`
	Attendance          *float64                 `json:"attendance,omitempty" db:"attendance" example:"92.5"`
	Grades              map[string]interface{}   `json:"grades" db:"grades"`
	UpcomingAssignments []map[string]interface{} `json:"upcomingAssignments" db:"upcoming_assignments"`
	UpcomingExams       []map[string]interface{} `json:"upcomingExams" db:"upcoming_exams"`
	Achievements        []map[string]interface{} `json:"achievements" db:"achievements"`
	Certificates        []map[string]interface{} `json:"certificates" db:"certificates"`
	Extracurricular     []map[string]interface{} `json:"extracurricularActivities" db:"extracurricular_activities"`
}
