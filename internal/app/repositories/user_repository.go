package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusconn/backend/internal/app/models"
	"github.com/campusconn/backend/internal/db"
	"github.com/campusconn/backend/internal/pkg/apperrors"
	"github.com/campusconn/backend/internal/pkg/dberrors"
)

// UserRepository handles database operations for users, their dashboards
// and their social graph.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create inserts a new user together with its empty dashboard row. Unique
// collisions are mapped to the field-specific sentinel errors.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO users (external_id, username, name, email)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at, updated_at
		`

		err := tx.QueryRow(ctx, query,
			user.ExternalID, user.Username, user.Name, user.Email,
		).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `INSERT INTO user_dashboards (user_id) VALUES ($1)`, user.ID)
		return err
	})

	if err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, "users_external_id_key"):
			return apperrors.ErrExternalIDExists
		case dberrors.IsDuplicateConstraintError(err, "users_username_key"):
			return apperrors.ErrUsernameAlreadyExists
		case dberrors.IsDuplicateConstraintError(err, "users_email_key"):
			return apperrors.ErrEmailAlreadyExists
		case dberrors.IsDuplicateConstraintError(err, "users_rollno_key"):
			return apperrors.ErrRollNoAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	if user.Interests == nil {
		user.Interests = []string{}
	}
	return nil
}

const userColumns = `id, external_id, username, name, email, rollno, department, regulation, interests, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.ExternalID,
		&user.Username,
		&user.Name,
		&user.Email,
		&user.RollNo,
		&user.Department,
		&user.Regulation,
		&user.Interests,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	if user.Interests == nil {
		user.Interests = []string{}
	}
	return &user, nil
}

// GetByID retrieves a user by internal id, with graph edges and dashboard.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	if err := r.loadEdges(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByExternalID retrieves a user by its auth-provider id, with graph
// edges and dashboard.
func (r *UserRepository) GetByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE external_id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, externalID))
	if err != nil {
		return nil, err
	}
	if err := r.loadEdges(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetIDByExternalID resolves an external auth id to the internal id.
func (r *UserRepository) GetIDByExternalID(ctx context.Context, externalID string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `SELECT id FROM users WHERE external_id = $1`, externalID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrUserNotFound
		}
		return 0, fmt.Errorf("error resolving user: %w", err)
	}
	return id, nil
}

// loadEdges attaches graph edges and the dashboard to a user.
func (r *UserRepository) loadEdges(ctx context.Context, user *models.User) error {
	edgeQueries := []struct {
		dest  *[]int64
		query string
	}{
		{&user.Connections, `SELECT connection_id FROM user_connections WHERE user_id = $1 ORDER BY connection_id`},
		{&user.ConnectRequests, `SELECT from_user_id FROM connection_requests WHERE to_user_id = $1 ORDER BY from_user_id`},
		{&user.SentConnectRequests, `SELECT to_user_id FROM connection_requests WHERE from_user_id = $1 ORDER BY to_user_id`},
		{&user.PartOfRooms, `SELECT room_id FROM room_members WHERE user_id = $1 ORDER BY room_id`},
		{&user.RoomsCreated, `SELECT id FROM rooms WHERE creator_id = $1 ORDER BY id`},
	}

	for _, eq := range edgeQueries {
		ids, err := r.queryIDs(ctx, eq.query, user.ID)
		if err != nil {
			return err
		}
		*eq.dest = ids
	}

	dashboard, err := r.GetDashboard(ctx, user.ID)
	if err != nil && !errors.Is(err, apperrors.ErrResourceNotFound) {
		return err
	}
	user.Dashboard = dashboard
	return nil
}

func (r *UserRepository) queryIDs(ctx context.Context, query string, userID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading user edges: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// UpdateInfo applies a partial profile update. Nil fields retain their
// prior value; a non-nil interests slice replaces the stored list.
func (r *UserRepository) UpdateInfo(ctx context.Context, id int64, department, regulation, rollno *string, interests []string) error {
	query := `
		UPDATE users
		SET department = COALESCE($2, department),
		    regulation = COALESCE($3, regulation),
		    rollno     = COALESCE($4, rollno),
		    interests  = COALESCE($5, interests),
		    updated_at = NOW()
		WHERE id = $1
	`

	cmdTag, err := r.db.Exec(ctx, query, id, department, regulation, rollno, interests)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_rollno_key") {
			return apperrors.ErrRollNoAlreadyExists
		}
		return fmt.Errorf("error updating user info: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// GetDashboard retrieves the academic-performance bundle for a user.
func (r *UserRepository) GetDashboard(ctx context.Context, userID int64) (*models.Dashboard, error) {
	query := `
		SELECT user_id, gpa, attendance, grades, upcoming_assignments,
		       upcoming_exams, achievements, certificates, extracurricular_activities
		FROM user_dashboards
		WHERE user_id = $1
	`

	var d models.Dashboard
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&d.UserID,
		&d.GPA,
		&d.Attendance,
		&d.Grades,
		&d.UpcomingAssignments,
		&d.UpcomingExams,
		&d.Achievements,
		&d.Certificates,
		&d.Extracurricular,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving dashboard: %w", err)
	}
	return &d, nil
}

// dashboardColumn maps a category to its user_dashboards column. The
// switch doubles as a whitelist so category names never reach SQL text
// unchecked.
func dashboardColumn(category models.DashboardCategory) (string, error) {
	switch category {
	case models.CategoryGPA:
		return "gpa", nil
	case models.CategoryAttendance:
		return "attendance", nil
	case models.CategoryGrades:
		return "grades", nil
	case models.CategoryUpcomingAssignments:
		return "upcoming_assignments", nil
	case models.CategoryUpcomingExams:
		return "upcoming_exams", nil
	case models.CategoryAchievements:
		return "achievements", nil
	case models.CategoryCertificates:
		return "certificates", nil
	case models.CategoryExtracurricular:
		return "extracurricular_activities", nil
	}
	return "", fmt.Errorf("unknown dashboard category %q", category)
}

// SetDashboardScalar overwrites a scalar category (gpa, attendance).
func (r *UserRepository) SetDashboardScalar(ctx context.Context, userID int64, category models.DashboardCategory, value float64) error {
	column, err := dashboardColumn(category)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`UPDATE user_dashboards SET %s = $2 WHERE user_id = $1`, column)
	cmdTag, err := r.db.Exec(ctx, query, userID, value)
	if err != nil {
		return fmt.Errorf("error updating dashboard: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// MergeDashboardMap merges a json object into a map category (grades),
// keeping keys the patch does not mention.
func (r *UserRepository) MergeDashboardMap(ctx context.Context, userID int64, category models.DashboardCategory, patch []byte) error {
	column, err := dashboardColumn(category)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`UPDATE user_dashboards SET %s = %s || $2::jsonb WHERE user_id = $1`, column, column)
	cmdTag, err := r.db.Exec(ctx, query, userID, patch)
	if err != nil {
		return fmt.Errorf("error merging dashboard map: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// AppendDashboardEntry appends a json object to a list category.
func (r *UserRepository) AppendDashboardEntry(ctx context.Context, userID int64, category models.DashboardCategory, entry []byte) error {
	column, err := dashboardColumn(category)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`UPDATE user_dashboards SET %s = %s || $2::jsonb WHERE user_id = $1`, column, column)
	cmdTag, err := r.db.Exec(ctx, query, userID, entry)
	if err != nil {
		return fmt.Errorf("error appending dashboard entry: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// CreateConnectRequest records a pending connection request. Repeating an
// existing request is a no-op.
func (r *UserRepository) CreateConnectRequest(ctx context.Context, fromID, toID int64) error {
	query := `
		INSERT INTO connection_requests (from_user_id, to_user_id)
		VALUES ($1, $2)
		ON CONFLICT (from_user_id, to_user_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, fromID, toID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error creating connection request: %w", err)
	}
	return nil
}

// AcceptConnectRequest removes the pending request and writes both
// connection edges in a single transaction, keeping the graph symmetric.
func (r *UserRepository) AcceptConnectRequest(ctx context.Context, fromID, toID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx,
			`DELETE FROM connection_requests WHERE from_user_id = $1 AND to_user_id = $2`,
			fromID, toID)
		if err != nil {
			return fmt.Errorf("error deleting connection request: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrConnectRequestNotFound
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO user_connections (user_id, connection_id)
			VALUES ($1, $2), ($2, $1)
			ON CONFLICT (user_id, connection_id) DO NOTHING
		`, fromID, toID)
		if err != nil {
			return fmt.Errorf("error creating connection edges: %w", err)
		}
		return nil
	})
}
