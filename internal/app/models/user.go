package models

import (
	"time"
)

// User defines the user model based on the 'users' table.
// Identity is anchored on ExternalID, the opaque id issued by the
// external auth provider and used as the cross-system user key.
type User struct {
	ID         int64     `json:"id" db:"id" example:"1"`                                   // Internal identifier
	ExternalID string    `json:"externalAuthId" db:"external_id" example:"user_2aB3cD4eF"` // Auth provider id (unique)
	Username   string    `json:"username" db:"username" example:"jdoe"`                    // Unique handle
	Name       string    `json:"name" db:"name" example:"John Doe"`                        // Display name
	Email      string    `json:"email" db:"email" example:"jdoe@school.edu"`               // Unique email address
	RollNo     *string   `json:"rollno,omitempty" db:"rollno" example:"20B01A1234"`        // Roll number (unique, nullable)
	Department *string   `json:"department,omitempty" db:"department" example:"CSE"`       // Academic department code
	Regulation *string   `json:"regulation,omitempty" db:"regulation" example:"VR20"`      // Academic regulation code
	Interests  []string  `json:"interests" db:"interests"`                                 // Free-form interest tags
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`

	// Social graph and membership edges, loaded on demand
	Connections         []int64 `json:"connections,omitempty"`
	ConnectRequests     []int64 `json:"connectRequests,omitempty"`     // Pending incoming
	SentConnectRequests []int64 `json:"sentConnectRequests,omitempty"` // Pending outgoing
	PartOfRooms         []int64 `json:"partOfRooms,omitempty"`
	RoomsCreated        []int64 `json:"roomsCreated,omitempty"`

	// Academic performance bundle
	Dashboard *Dashboard `json:"dashboard,omitempty"`
}
