package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/campusconn/backend/internal/pkg/apperrors"
)

func TestHandleAPIError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation failure", apperrors.NewValidationError("bad input"), http.StatusBadRequest},
		{"self connection", apperrors.ErrSelfConnection, http.StatusBadRequest},
		{"invalid content type", apperrors.ErrInvalidContentType, http.StatusBadRequest},
		{"empty content", apperrors.ErrEmptyContent, http.StatusBadRequest},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"not a room member", apperrors.ErrNotRoomMember, http.StatusForbidden},
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound},
		{"room not found", apperrors.ErrRoomNotFound, http.StatusNotFound},
		{"campus info not found", apperrors.ErrCampusInfoNotFound, http.StatusNotFound},
		{"connect request not found", apperrors.ErrConnectRequestNotFound, http.StatusNotFound},
		{"email exists", apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{"username exists", apperrors.ErrUsernameAlreadyExists, http.StatusConflict},
		{"room name exists", apperrors.ErrRoomAlreadyExists, http.StatusConflict},
		{"already a member", apperrors.ErrAlreadyMember, http.StatusConflict},
		{"upstream failure", apperrors.NewUpstreamError("storage down"), http.StatusBadGateway},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(recorder)

			HandleAPIError(ctx, tc.err)

			assert.Equal(t, tc.wantStatus, recorder.Code)
			assert.Contains(t, recorder.Body.String(), `"error"`)
		})
	}
}

func TestHandleAPIError_WrappedErrorsStillMatch(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)

	wrapped := apperrors.NewCustomError(apperrors.ErrRoomNotFound, "room 42 missing")
	HandleAPIError(ctx, wrapped)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
