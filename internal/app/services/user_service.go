package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/campusconn/backend/internal/app/models"
	"github.com/campusconn/backend/internal/app/models/dto"
	"github.com/campusconn/backend/internal/pkg/apperrors"
)

// UserService handles user-related operations: registration, profile
// lookup, partial updates, the dashboard merge rules and the connection
// graph.
type UserService struct {
	userStore UserStore
}

// NewUserService creates a new user service instance
func NewUserService(userStore UserStore) *UserService {
	return &UserService{userStore: userStore}
}

// Register creates a new user from the external auth identity.
func (s *UserService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	if strings.TrimSpace(req.ExternalAuthID) == "" ||
		strings.TrimSpace(req.Username) == "" ||
		strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" {
		return nil, apperrors.NewValidationError("externalAuthId, username, name and email are required")
	}

	user := &models.User{
		ExternalID: strings.TrimSpace(req.ExternalAuthID),
		Username:   strings.TrimSpace(req.Username),
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.TrimSpace(req.Email),
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByExternalID retrieves a user by the auth-provider id.
func (s *UserService) GetByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	if strings.TrimSpace(externalID) == "" {
		return nil, apperrors.NewValidationError("userId is required")
	}
	return s.userStore.GetByExternalID(ctx, externalID)
}

// GetByID retrieves a user by internal id.
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid user id")
	}
	return s.userStore.GetByID(ctx, id)
}

// UpdateInfo applies a partial profile update; fields the request leaves
// unset keep their stored values.
func (s *UserService) UpdateInfo(ctx context.Context, req *dto.UpdateInfoRequest) error {
	id, err := s.userStore.GetIDByExternalID(ctx, req.UserID)
	if err != nil {
		return err
	}
	return s.userStore.UpdateInfo(ctx, id, req.Department, req.Regulation, req.RollNo, req.Interests)
}

// UpdateDashboard applies a category-specific merge to the academic
// dashboard: gpa/attendance overwrite, grades merges key by key, list
// categories append the supplied entry.
func (s *UserService) UpdateDashboard(ctx context.Context, req *dto.UpdateDashboardRequest) error {
	category := models.DashboardCategory(req.Category)
	if !category.IsValid() {
		return apperrors.NewValidationError(fmt.Sprintf("unknown dashboard category %q", req.Category))
	}

	id, err := s.userStore.GetIDByExternalID(ctx, req.UserID)
	if err != nil {
		return err
	}

	switch {
	case category.IsScalar():
		value, err := parseScalarPayload(category, req.Data)
		if err != nil {
			return err
		}
		return s.userStore.SetDashboardScalar(ctx, id, category, value)

	case category == models.CategoryGrades:
		var patch map[string]interface{}
		if err := json.Unmarshal(req.Data, &patch); err != nil {
			return apperrors.NewValidationError("grades data must be a JSON object")
		}
		if len(patch) == 0 {
			return apperrors.NewValidationError("grades data is empty")
		}
		return s.userStore.MergeDashboardMap(ctx, id, category, req.Data)

	default:
		// List categories accept a single object or an array of objects.
		trimmed := strings.TrimSpace(string(req.Data))
		if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
			return apperrors.NewValidationError("dashboard entry must be a JSON object or array")
		}
		if !json.Valid(req.Data) {
			return apperrors.NewValidationError("dashboard entry is not valid JSON")
		}
		return s.userStore.AppendDashboardEntry(ctx, id, category, req.Data)
	}
}

// parseScalarPayload extracts a numeric value for a scalar category. The
// mobile client submits form data as a string map keyed by the category
// name, so {"gpa":"8.4"}, "8.4" and 8.4 are all accepted.
func parseScalarPayload(category models.DashboardCategory, data json.RawMessage) (float64, error) {
	var asMap map[string]json.RawMessage
	if err := json.Unmarshal(data, &asMap); err == nil {
		if raw, ok := asMap[string(category)]; ok {
			data = raw
		} else {
			return 0, apperrors.NewValidationError(fmt.Sprintf("missing %q value in data", category))
		}
	}

	var asNumber float64
	if err := json.Unmarshal(data, &asNumber); err == nil {
		return asNumber, nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		value, err := strconv.ParseFloat(strings.TrimSpace(asString), 64)
		if err == nil {
			return value, nil
		}
	}

	return 0, apperrors.NewValidationError(fmt.Sprintf("%s value must be numeric", category))
}

// Connect records a pending connection request between two users.
// Repeating a pending request is a no-op.
func (s *UserService) Connect(ctx context.Context, req *dto.ConnectRequest) error {
	if req.FromUserID == req.ToUserID {
		return apperrors.ErrSelfConnection
	}

	fromID, err := s.userStore.GetIDByExternalID(ctx, req.FromUserID)
	if err != nil {
		return err
	}
	toID, err := s.userStore.GetIDByExternalID(ctx, req.ToUserID)
	if err != nil {
		return err
	}
	if fromID == toID {
		return apperrors.ErrSelfConnection
	}

	return s.userStore.CreateConnectRequest(ctx, fromID, toID)
}

// AcceptConnection consumes a pending request and makes the connection
// symmetric; both edges are written atomically by the store.
func (s *UserService) AcceptConnection(ctx context.Context, req *dto.ConnectRequest) error {
	fromID, err := s.userStore.GetIDByExternalID(ctx, req.FromUserID)
	if err != nil {
		return err
	}
	toID, err := s.userStore.GetIDByExternalID(ctx, req.ToUserID)
	if err != nil {
		return err
	}

	return s.userStore.AcceptConnectRequest(ctx, fromID, toID)
}
