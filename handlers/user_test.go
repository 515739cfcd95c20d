package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wodenvase/BharatLedger/services"
)

func newUserRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	handler := NewUserHandler(services.NewUserStore(db), log)

	router := gin.New()
	router.GET("/user/profile", handler.GetProfile)
	router.PUT("/user/profile", handler.UpdateProfile)
	return router, mock
}

func TestGetProfile(t *testing.T) {
	router, mock := newUserRouter(t)

	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT id FROM users WHERE email").
		WithArgs("a@b.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("u-1"))
	mock.ExpectQuery("SELECT id, email, name, created_at").
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "created_at"}).
			AddRow("u-1", "a@b.com", "Asha", created))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user/profile?userEmail=a@b.com", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Asha")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProfile(t *testing.T) {
	router, mock := newUserRouter(t)

	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT id FROM users WHERE id").
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("u-1"))
	mock.ExpectQuery("UPDATE users SET name").
		WithArgs("New Name", "u-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "created_at"}).
			AddRow("u-1", "a@b.com", "New Name", created))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/user/profile?userId=u-1", strings.NewReader(`{"name": "New Name"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "New Name")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProfileMissingName(t *testing.T) {
	router, mock := newUserRouter(t)

	mock.ExpectQuery("SELECT id FROM users WHERE id").
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("u-1"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/user/profile?userId=u-1", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
