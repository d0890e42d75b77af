package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"artmarket-api/config"
	"artmarket-api/internal/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.JWT_SECRET = "test-secret"
	t.Cleanup(func() { config.JWT_SECRET = "" })

	db, mock := testutil.NewGormMock(t)
	h := NewHandler(db)

	r := gin.New()
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	return r, mock
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	r, mock := setupAuthRouter(t)

	w := postJSON(r, "/register", `{"email":"jane@x.com","password":"short"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "at least 8 characters")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterCreatesUser(t *testing.T) {
	r, mock := setupAuthRouter(t)
	userID := uuid.NewString()

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(userID))

	w := postJSON(r, "/register",
		`{"email":"jane@x.com","password":"password123","firstName":"Jane","lastName":"Doe"}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, userID, got["id"])
	assert.Equal(t, "jane@x.com", got["email"])
	// password hash never leaves the server
	_, exposed := got["password"]
	assert.False(t, exposed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginIssuesToken(t *testing.T) {
	r, mock := setupAuthRouter(t)
	userID := uuid.NewString()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password"}).
			AddRow(userID, "jane@x.com", string(hashed)))

	w := postJSON(r, "/login", `{"email":"jane@x.com","password":"password123"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.NotEmpty(t, got["token"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginWrongPassword(t *testing.T) {
	r, mock := setupAuthRouter(t)

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password"}).
			AddRow(uuid.NewString(), "jane@x.com", string(hashed)))

	w := postJSON(r, "/login", `{"email":"jane@x.com","password":"wrong-password"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginUnknownUser(t *testing.T) {
	r, mock := setupAuthRouter(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email =`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := postJSON(r, "/login", `{"email":"ghost@x.com","password":"password123"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
