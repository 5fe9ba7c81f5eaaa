package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	RoomRepository       *RoomRepository
	MessageRepository    *MessageRepository
	CampusInfoRepository *CampusInfoRepository
	FeedRepository       *FeedRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		RoomRepository:       NewRoomRepository(db),
		MessageRepository:    NewMessageRepository(db),
		CampusInfoRepository: NewCampusInfoRepository(db),
		FeedRepository:       NewFeedRepository(db),
	}
}
