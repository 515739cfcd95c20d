package handlers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wodenvase/BharatLedger/services"
)

func newUploadRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	handler := NewUploadHandler(
		services.NewUserStore(db),
		services.NewAccountStore(db),
		services.NewTransactionStore(db),
		log,
	)

	router := gin.New()
	router.POST("/upload", handler.Upload)
	return router, mock
}

func multipartCSV(t *testing.T, filename, contents string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(contents))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func expectResolvedUser(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("SELECT id FROM users WHERE id").
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("u-1"))
}

func TestUploadSuccess(t *testing.T) {
	router, mock := newUploadRouter(t)

	expectResolvedUser(mock)
	mock.ExpectQuery("SELECT id FROM accounts").
		WithArgs("a-1", "u-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("a-1"))
	mock.ExpectBegin()
	prep := mock.ExpectPrepare("INSERT INTO transactions")
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	csv := "Date,Description,Amount,Type\n2024-01-05,Salary,50000,credit\n2024-01-10,Swiggy,-500,debit\n"
	body, contentType := multipartCSV(t, "statement.csv", csv, map[string]string{"accountId": "a-1"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload?userId=u-1", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"inserted":2`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUploadRejectsNonCSV(t *testing.T) {
	router, mock := newUploadRouter(t)
	expectResolvedUser(mock)

	body, contentType := multipartCSV(t, "statement.xlsx", "junk", map[string]string{"accountId": "a-1"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload?userId=u-1", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Only CSV files are supported")
}

func TestUploadMissingAccountID(t *testing.T) {
	router, mock := newUploadRouter(t)
	expectResolvedUser(mock)

	body, contentType := multipartCSV(t, "statement.csv", "Date,Amount\n", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload?userId=u-1", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Account ID is required")
}

func TestUploadAccountNotOwned(t *testing.T) {
	router, mock := newUploadRouter(t)

	expectResolvedUser(mock)
	mock.ExpectQuery("SELECT id FROM accounts").
		WithArgs("a-9", "u-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	body, contentType := multipartCSV(t, "statement.csv", "Date,Amount\n2024-01-05,10\n", map[string]string{"accountId": "a-9"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload?userId=u-1", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Account not found")
}

func TestUploadMissingIdentity(t *testing.T) {
	router, _ := newUploadRouter(t)

	body, contentType := multipartCSV(t, "statement.csv", "Date,Amount\n", map[string]string{"accountId": "a-1"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "userId or userEmail required")
}
