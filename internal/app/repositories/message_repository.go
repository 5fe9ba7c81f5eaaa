package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusconn/backend/internal/app/models"
	"github.com/campusconn/backend/internal/pkg/apperrors"
	"github.com/campusconn/backend/internal/pkg/dberrors"
)

// MessageRepository handles database operations for room messages.
// Messages are append-only: there is no update or delete path.
type MessageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create inserts a new message. The timestamp is stamped by the database,
// never taken from the client.
func (r *MessageRepository) Create(ctx context.Context, message *models.Message) error {
	query := `
		INSERT INTO messages (sender_id, room_id, content_type, content, asset_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		message.SenderID,
		message.RoomID,
		message.ContentType,
		message.Content,
		message.AssetURL,
	).Scan(&message.ID, &message.Timestamp)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrRoomNotFound
		}
		return fmt.Errorf("error creating message: %w", err)
	}
	return nil
}

// GetByRoomID retrieves the full message history of a room in ascending
// timestamp order, each message carrying its sender's public profile.
func (r *MessageRepository) GetByRoomID(ctx context.Context, roomID int64) ([]*models.Message, error) {
	queryBuilder := squirrel.Select(
		"m.id", "m.sender_id", "m.room_id", "m.content_type",
		"m.content", "m.asset_url", "m.created_at",
		"u.external_id", "u.username", "u.name",
	).
		From("messages m").
		Join("users u ON m.sender_id = u.id").
		Where("m.room_id = ?", roomID).
		OrderBy("m.created_at ASC", "m.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	messages := []*models.Message{}
	for rows.Next() {
		var message models.Message
		var sender models.User

		err := rows.Scan(
			&message.ID,
			&message.SenderID,
			&message.RoomID,
			&message.ContentType,
			&message.Content,
			&message.AssetURL,
			&message.Timestamp,
			&sender.ExternalID,
			&sender.Username,
			&sender.Name,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning message row: %w", err)
		}

		sender.ID = message.SenderID
		message.Sender = &sender
		messages = append(messages, &message)
	}

	return messages, rows.Err()
}
