package dto

import "encoding/json"

// RegisterRequest is the body of POST /register. All fields are required;
// externalAuthId, username and email must be globally unique.
type RegisterRequest struct {
	ExternalAuthID string `json:"externalAuthId" binding:"required" example:"user_2aB3cD4eF"`
	Username       string `json:"username" binding:"required" example:"jdoe"`
	Name           string `json:"name" binding:"required" example:"John Doe"`
	Email          string `json:"email" binding:"required,email" example:"jdoe@school.edu"`
}

// UpdateInfoRequest is the body of PUT /user/update-info. Absent fields
// retain their prior values; interests replace the stored list.
type UpdateInfoRequest struct {
	UserID     string   `json:"userId" binding:"required" example:"user_2aB3cD4eF"`
	Department *string  `json:"department,omitempty" example:"CSE"`
	Regulation *string  `json:"regulation,omitempty" example:"VR20"`
	Interests  []string `json:"interests,omitempty"`
	RollNo     *string  `json:"rollno,omitempty" example:"20B01A1234"`
}

// UpdateDashboardRequest is the body of PUT /user/updateUserDashboard.
// Data is interpreted per category: a scalar for gpa/attendance, a map
// for grades, an object to append for the list categories.
type UpdateDashboardRequest struct {
	UserID   string          `json:"userId" binding:"required" example:"user_2aB3cD4eF"`
	Category string          `json:"category" binding:"required" example:"grades"`
	Data     json.RawMessage `json:"data" binding:"required"`
}

// ConnectRequest is the body of POST /user/connect and
// POST /user/acceptConnection.
type ConnectRequest struct {
	FromUserID string `json:"fromUserId" binding:"required" example:"user_2aB3cD4eF"`
	ToUserID   string `json:"toUserId" binding:"required" example:"user_9xY8wV7uT"`
}
