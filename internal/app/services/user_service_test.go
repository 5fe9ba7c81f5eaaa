package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/campusconn/backend/internal/app/models"
	"github.com/campusconn/backend/internal/app/models/dto"
	"github.com/campusconn/backend/internal/pkg/apperrors"
)

func TestRegister_RequiresAllFields(t *testing.T) {
	store := new(mockUserStore)
	service := NewUserService(store)

	testCases := []struct {
		name string
		req  dto.RegisterRequest
	}{
		{"missing externalAuthId", dto.RegisterRequest{Username: "jdoe", Name: "John", Email: "j@x.edu"}},
		{"missing username", dto.RegisterRequest{ExternalAuthID: "ext-1", Name: "John", Email: "j@x.edu"}},
		{"missing name", dto.RegisterRequest{ExternalAuthID: "ext-1", Username: "jdoe", Email: "j@x.edu"}},
		{"missing email", dto.RegisterRequest{ExternalAuthID: "ext-1", Username: "jdoe", Name: "John"}},
		{"whitespace only", dto.RegisterRequest{ExternalAuthID: "  ", Username: "jdoe", Name: "John", Email: "j@x.edu"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Register(context.Background(), &tc.req)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}

	store.AssertNotCalled(t, "Create")
}

func TestRegister_TrimsFields(t *testing.T) {
	store := new(mockUserStore)
	store.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.ExternalID == "ext-1" && u.Username == "jdoe" && u.Email == "j@x.edu"
	})).Return(nil)

	service := NewUserService(store)
	user, err := service.Register(context.Background(), &dto.RegisterRequest{
		ExternalAuthID: " ext-1 ",
		Username:       " jdoe ",
		Name:           "John Doe",
		Email:          " j@x.edu ",
	})

	assert.NoError(t, err)
	assert.Equal(t, "jdoe", user.Username)
	store.AssertExpectations(t)
}

func TestRegister_PropagatesDuplicateError(t *testing.T) {
	store := new(mockUserStore)
	store.On("Create", mock.Anything, mock.Anything).Return(apperrors.ErrUsernameAlreadyExists)

	service := NewUserService(store)
	_, err := service.Register(context.Background(), &dto.RegisterRequest{
		ExternalAuthID: "ext-1", Username: "jdoe", Name: "John", Email: "j@x.edu",
	})

	assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyExists)
}

func TestUpdateDashboard_UnknownCategory(t *testing.T) {
	store := new(mockUserStore)
	service := NewUserService(store)

	err := service.UpdateDashboard(context.Background(), &dto.UpdateDashboardRequest{
		UserID:   "ext-1",
		Category: "homework",
		Data:     json.RawMessage(`{}`),
	})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	store.AssertNotCalled(t, "GetIDByExternalID")
}

func TestUpdateDashboard_ScalarAcceptsAllClientShapes(t *testing.T) {
	// The mobile client submits scalar updates in several shapes; all must
	// resolve to the same numeric overwrite.
	testCases := []struct {
		name string
		data string
		want float64
	}{
		{"keyed string", `{"gpa":"8.4"}`, 8.4},
		{"keyed number", `{"gpa":8.4}`, 8.4},
		{"bare string", `"8.4"`, 8.4},
		{"bare number", `8.4`, 8.4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := new(mockUserStore)
			store.On("GetIDByExternalID", mock.Anything, "ext-1").Return(int64(10), nil)
			store.On("SetDashboardScalar", mock.Anything, int64(10), models.CategoryGPA, tc.want).Return(nil)

			service := NewUserService(store)
			err := service.UpdateDashboard(context.Background(), &dto.UpdateDashboardRequest{
				UserID:   "ext-1",
				Category: "gpa",
				Data:     json.RawMessage(tc.data),
			})

			assert.NoError(t, err)
			store.AssertExpectations(t)
		})
	}
}

func TestUpdateDashboard_ScalarRejectsNonNumeric(t *testing.T) {
	store := new(mockUserStore)
	store.On("GetIDByExternalID", mock.Anything, "ext-1").Return(int64(10), nil)

	service := NewUserService(store)
	err := service.UpdateDashboard(context.Background(), &dto.UpdateDashboardRequest{
		UserID:   "ext-1",
		Category: "attendance",
		Data:     json.RawMessage(`"not a number"`),
	})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	store.AssertNotCalled(t, "SetDashboardScalar")
}

func TestUpdateDashboard_GradesMergesObject(t *testing.T) {
	patch := json.RawMessage(`{"DBMS":"A","OS":"B+"}`)

	store := new(mockUserStore)
	store.On("GetIDByExternalID", mock.Anything, "ext-1").Return(int64(10), nil)
	store.On("MergeDashboardMap", mock.Anything, int64(10), models.CategoryGrades, []byte(patch)).Return(nil)

	service := NewUserService(store)
	err := service.UpdateDashboard(context.Background(), &dto.UpdateDashboardRequest{
		UserID:   "ext-1",
		Category: "grades",
		Data:     patch,
	})

	assert.NoError(t, err)
	store.AssertExpectations(t)
}

func TestUpdateDashboard_GradesRejectsNonObject(t *testing.T) {
	for _, data := range []string{`"A"`, `[1,2]`, `{}`} {
		store := new(mockUserStore)
		store.On("GetIDByExternalID", mock.Anything, "ext-1").Return(int64(10), nil)

		service := NewUserService(store)
		err := service.UpdateDashboard(context.Background(), &dto.UpdateDashboardRequest{
			UserID:   "ext-1",
			Category: "grades",
			Data:     json.RawMessage(data),
		})

		assert.ErrorIs(t, err, apperrors.ErrValidationFailed, "data: %s", data)
		store.AssertNotCalled(t, "MergeDashboardMap")
	}
}

func TestUpdateDashboard_ListCategoriesAppend(t *testing.T) {
	entry := json.RawMessage(`{"title":"ML assignment","due":"2026-09-12"}`)

	store := new(mockUserStore)
	store.On("GetIDByExternalID", mock.Anything, "ext-1").Return(int64(10), nil)
	store.On("AppendDashboardEntry", mock.Anything, int64(10), models.CategoryUpcomingAssignments, []byte(entry)).Return(nil)

	service := NewUserService(store)
	err := service.UpdateDashboard(context.Background(), &dto.UpdateDashboardRequest{
		UserID:   "ext-1",
		Category: "upcomingAssignments",
		Data:     entry,
	})

	assert.NoError(t, err)
	store.AssertExpectations(t)
}

func TestUpdateDashboard_ListRejectsScalarPayload(t *testing.T) {
	store := new(mockUserStore)
	store.On("GetIDByExternalID", mock.Anything, "ext-1").Return(int64(10), nil)

	service := NewUserService(store)
	err := service.UpdateDashboard(context.Background(), &dto.UpdateDashboardRequest{
		UserID:   "ext-1",
		Category: "achievements",
		Data:     json.RawMessage(`"won hackathon"`),
	})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	store.AssertNotCalled(t, "AppendDashboardEntry")
}

func TestConnect_RejectsSelfConnection(t *testing.T) {
	store := new(mockUserStore)
	service := NewUserService(store)

	err := service.Connect(context.Background(), &dto.ConnectRequest{
		FromUserID: "ext-1",
		ToUserID:   "ext-1",
	})

	assert.ErrorIs(t, err, apperrors.ErrSelfConnection)
	store.AssertNotCalled(t, "CreateConnectRequest")
}

func TestConnect_CreatesPendingRequest(t *testing.T) {
	store := new(mockUserStore)
	store.On("GetIDByExternalID", mock.Anything, "ext-1").Return(int64(1), nil)
	store.On("GetIDByExternalID", mock.Anything, "ext-2").Return(int64(2), nil)
	store.On("CreateConnectRequest", mock.Anything, int64(1), int64(2)).Return(nil)

	service := NewUserService(store)
	err := service.Connect(context.Background(), &dto.ConnectRequest{
		FromUserID: "ext-1",
		ToUserID:   "ext-2",
	})

	assert.NoError(t, err)
	store.AssertExpectations(t)
}

func TestConnect_UnknownUser(t *testing.T) {
	store := new(mockUserStore)
	store.On("GetIDByExternalID", mock.Anything, "ext-1").Return(int64(0), apperrors.ErrUserNotFound)

	service := NewUserService(store)
	err := service.Connect(context.Background(), &dto.ConnectRequest{
		FromUserID: "ext-1",
		ToUserID:   "ext-2",
	})

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestAcceptConnection_NoPendingRequest(t *testing.T) {
	store := new(mockUserStore)
	store.On("GetIDByExternalID", mock.Anything, "ext-1").Return(int64(1), nil)
	store.On("GetIDByExternalID", mock.Anything, "ext-2").Return(int64(2), nil)
	store.On("AcceptConnectRequest", mock.Anything, int64(1), int64(2)).Return(apperrors.ErrConnectRequestNotFound)

	service := NewUserService(store)
	err := service.AcceptConnection(context.Background(), &dto.ConnectRequest{
		FromUserID: "ext-1",
		ToUserID:   "ext-2",
	})

	assert.ErrorIs(t, err, apperrors.ErrConnectRequestNotFound)
}

func TestUpdateInfo_ResolvesExternalID(t *testing.T) {
	dept := "CSE"
	store := new(mockUserStore)
	store.On("GetIDByExternalID", mock.Anything, "ext-1").Return(int64(7), nil)
	store.On("UpdateInfo", mock.Anything, int64(7), &dept, (*string)(nil), (*string)(nil), []string{"ml", "web"}).Return(nil)

	service := NewUserService(store)
	err := service.UpdateInfo(context.Background(), &dto.UpdateInfoRequest{
		UserID:     "ext-1",
		Department: &dept,
		Interests:  []string{"ml", "web"},
	})

	assert.NoError(t, err)
	store.AssertExpectations(t)
}
