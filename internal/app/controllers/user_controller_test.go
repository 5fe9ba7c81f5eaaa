package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/campusconn/backend/internal/app/models"
	"github.com/campusconn/backend/internal/app/services"
	"github.com/campusconn/backend/internal/pkg/apperrors"
)

// stubUserStore is a minimal UserStore for handler-level tests.
type stubUserStore struct {
	users map[string]*models.User
}

func (s *stubUserStore) Create(_ context.Context, user *models.User) error {
	if _, ok := s.users[user.ExternalID]; ok {
		return apperrors.ErrExternalIDExists
	}
	user.ID = int64(len(s.users) + 1)
	s.users[user.ExternalID] = user
	return nil
}

func (s *stubUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *stubUserStore) GetByExternalID(_ context.Context, externalID string) (*models.User, error) {
	if u, ok := s.users[externalID]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *stubUserStore) GetIDByExternalID(_ context.Context, externalID string) (int64, error) {
	if u, ok := s.users[externalID]; ok {
		return u.ID, nil
	}
	return 0, apperrors.ErrUserNotFound
}

func (s *stubUserStore) UpdateInfo(context.Context, int64, *string, *string, *string, []string) error {
	return nil
}

func (s *stubUserStore) SetDashboardScalar(context.Context, int64, models.DashboardCategory, float64) error {
	return nil
}

func (s *stubUserStore) MergeDashboardMap(context.Context, int64, models.DashboardCategory, []byte) error {
	return nil
}

func (s *stubUserStore) AppendDashboardEntry(context.Context, int64, models.DashboardCategory, []byte) error {
	return nil
}

func (s *stubUserStore) CreateConnectRequest(context.Context, int64, int64) error { return nil }
func (s *stubUserStore) AcceptConnectRequest(context.Context, int64, int64) error { return nil }

func newUserTestRouter() (*gin.Engine, *stubUserStore) {
	gin.SetMode(gin.TestMode)
	store := &stubUserStore{users: make(map[string]*models.User)}
	controller := NewUserController(services.NewUserService(store))

	router := gin.New()
	router.POST("/register", controller.Register)
	router.GET("/user", controller.GetUser)
	return router, store
}

func TestRegister_Endpoint(t *testing.T) {
	router, _ := newUserTestRouter()

	body := `{"externalAuthId":"ext-1","username":"jdoe","name":"John Doe","email":"jdoe@school.edu"}`
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"username":"jdoe"`)
}

func TestRegister_Endpoint_RepeatedRegistrationConflicts(t *testing.T) {
	router, _ := newUserTestRouter()

	body := `{"externalAuthId":"ext-1","username":"jdoe","name":"John Doe","email":"jdoe@school.edu"}`
	for i, wantStatus := range []int{http.StatusCreated, http.StatusConflict} {
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, wantStatus, recorder.Code, "attempt %d", i+1)
	}
}

func TestRegister_Endpoint_RejectsMalformedBody(t *testing.T) {
	router, _ := newUserTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"username":`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetUser_Endpoint_RequiresUserID(t *testing.T) {
	router, _ := newUserTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetUser_Endpoint_NotFound(t *testing.T) {
	router, _ := newUserTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/user?userId=ghost", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetUser_Endpoint_ReturnsProfile(t *testing.T) {
	router, store := newUserTestRouter()
	store.users["ext-1"] = &models.User{ID: 1, ExternalID: "ext-1", Username: "jdoe"}

	req := httptest.NewRequest(http.MethodGet, "/user?userId=ext-1", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"externalAuthId":"ext-1"`)
}
