package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusconn/backend/internal/app/models"
	"github.com/campusconn/backend/internal/db"
	"github.com/campusconn/backend/internal/pkg/apperrors"
	"github.com/campusconn/backend/internal/pkg/dberrors"
)

// RoomRepository handles database operations for rooms and their
// membership set.
type RoomRepository struct {
	db *pgxpool.Pool
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{db: db}
}

// Create inserts a new room and its creator-membership row in one
// transaction, so the creator is a member from the first read.
func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO rooms (name, description, image_link, creator_id, permission)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at
		`

		err := tx.QueryRow(ctx, query,
			room.Name, room.Description, room.ImageLink, room.CreatorID, room.Permission,
		).Scan(&room.ID, &room.CreatedAt)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO room_members (room_id, user_id) VALUES ($1, $2)`,
			room.ID, room.CreatorID)
		return err
	})

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "rooms_name_key") {
			return apperrors.ErrRoomAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error creating room: %w", err)
	}
	return nil
}

const roomColumns = `id, name, description, image_link, creator_id, permission, created_at`

func scanRoom(row pgx.Row) (*models.Room, error) {
	var room models.Room
	err := row.Scan(
		&room.ID,
		&room.Name,
		&room.Description,
		&room.ImageLink,
		&room.CreatorID,
		&room.Permission,
		&room.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("error retrieving room: %w", err)
	}
	return &room, nil
}

// GetByID retrieves a room by id together with its member list.
func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	room, err := scanRoom(r.db.QueryRow(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}

	members, err := r.getMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	room.Members = members
	return room, nil
}

// getMembers loads the member users of a room, join order preserved.
func (r *RoomRepository) getMembers(ctx context.Context, roomID int64) ([]*models.User, error) {
	query := squirrel.Select(
		"u.id", "u.external_id", "u.username", "u.name", "u.email",
	).
		From("room_members rm").
		Join("users u ON rm.user_id = u.id").
		Where("rm.room_id = ?", roomID).
		OrderBy("rm.joined_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error loading room members: %w", err)
	}
	defer rows.Close()

	var members []*models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.ExternalID, &user.Username, &user.Name, &user.Email); err != nil {
			return nil, err
		}
		members = append(members, &user)
	}
	return members, rows.Err()
}

func (r *RoomRepository) queryRooms(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.Room, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	rooms := []*models.Room{}
	for rows.Next() {
		var room models.Room
		if err := rows.Scan(
			&room.ID,
			&room.Name,
			&room.Description,
			&room.ImageLink,
			&room.CreatorID,
			&room.Permission,
			&room.CreatedAt,
		); err != nil {
			return nil, err
		}
		rooms = append(rooms, &room)
	}
	return rooms, rows.Err()
}

// GetAll retrieves all rooms.
func (r *RoomRepository) GetAll(ctx context.Context) ([]*models.Room, error) {
	builder := squirrel.Select(
		"id", "name", "description", "image_link", "creator_id", "permission", "created_at",
	).
		From("rooms").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryRooms(ctx, builder)
}

// GetByMember retrieves the rooms a user belongs to.
func (r *RoomRepository) GetByMember(ctx context.Context, userID int64) ([]*models.Room, error) {
	builder := squirrel.Select(
		"r.id", "r.name", "r.description", "r.image_link", "r.creator_id", "r.permission", "r.created_at",
	).
		From("rooms r").
		Join("room_members rm ON rm.room_id = r.id").
		Where("rm.user_id = ?", userID).
		OrderBy("rm.joined_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryRooms(ctx, builder)
}

// SearchByName retrieves rooms whose name contains the query, case
// insensitively. No match yields an empty slice, not an error.
func (r *RoomRepository) SearchByName(ctx context.Context, query string) ([]*models.Room, error) {
	pattern := "%" + escapeLikePattern(query) + "%"

	builder := squirrel.Select(
		"id", "name", "description", "image_link", "creator_id", "permission", "created_at",
	).
		From("rooms").
		Where("name ILIKE ?", pattern).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryRooms(ctx, builder)
}

// escapeLikePattern neutralizes LIKE metacharacters in user input so a
// search for "100%" matches literally.
func escapeLikePattern(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// AddMember adds a user to the room's member set. The insert is
// idempotent at the database level; a repeated join reports
// ErrAlreadyMember without creating a duplicate row.
func (r *RoomRepository) AddMember(ctx context.Context, roomID, userID int64) error {
	query := `
		INSERT INTO room_members (room_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (room_id, user_id) DO NOTHING
	`

	cmdTag, err := r.db.Exec(ctx, query, roomID, userID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrRoomNotFound
		}
		return fmt.Errorf("error adding room member: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAlreadyMember
	}
	return nil
}

// IsMember reports whether a user is in the room's member set.
func (r *RoomRepository) IsMember(ctx context.Context, roomID, userID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM room_members WHERE room_id = $1 AND user_id = $2)`,
		roomID, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking room membership: %w", err)
	}
	return exists, nil
}

// UpdateName renames a room.
func (r *RoomRepository) UpdateName(ctx context.Context, roomID int64, name string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE rooms SET name = $2 WHERE id = $1`, roomID, name)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "rooms_name_key") {
			return apperrors.ErrRoomAlreadyExists
		}
		return fmt.Errorf("error renaming room: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRoomNotFound
	}
	return nil
}

// UpdateImageLink replaces the room image.
func (r *RoomRepository) UpdateImageLink(ctx context.Context, roomID int64, imageLink string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE rooms SET image_link = $2 WHERE id = $1`, roomID, imageLink)
	if err != nil {
		return fmt.Errorf("error updating room image: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRoomNotFound
	}
	return nil
}

// UpdatePermission changes who may edit room settings.
func (r *RoomRepository) UpdatePermission(ctx context.Context, roomID int64, permission models.RoomPermission) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE rooms SET permission = $2 WHERE id = $1`, roomID, permission)
	if err != nil {
		return fmt.Errorf("error updating room permission: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRoomNotFound
	}
	return nil
}
