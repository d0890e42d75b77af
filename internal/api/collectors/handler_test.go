package collectors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, mock := setupService(t)
	h := NewHandler(svc)

	r := gin.New()
	r.POST("/collector", h.Create)
	r.GET("/collector", h.GetAll)
	r.GET("/collector/:id", h.GetByID)
	r.PUT("/collector/:id", h.Update)
	r.DELETE("/collector/:id", h.Delete)
	return r, mock
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateCollector(t *testing.T) {
	r, mock := setupRouter(t)
	collectorID := uuid.NewString()
	userID := uuid.NewString()

	mock.ExpectQuery(`INSERT INTO "collector_profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(collectorID))

	w := doJSON(r, http.MethodPost, "/collector",
		fmt.Sprintf(`{"name":"Jane Doe","email":"jane@x.com","userId":%q}`, userID))

	require.Equal(t, http.StatusCreated, w.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, collectorID, got["id"])
	assert.Equal(t, "Jane Doe", got["name"])
	assert.Equal(t, "jane@x.com", got["email"])
	assert.Equal(t, userID, got["userId"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCollectorListsEveryViolation(t *testing.T) {
	r, mock := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/collector",
		`{"name":"","email":"not-an-email","userId":"not-a-uuid"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var got struct {
		Error   string   `json:"error"`
		Details []string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got.Details, 3)

	// nothing touched the store
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMalformedIDRejectedBeforeStore(t *testing.T) {
	r, mock := setupRouter(t)

	for _, tc := range []struct {
		method string
		body   string
	}{
		{http.MethodGet, ""},
		{http.MethodPut, `{"bio":"hi"}`},
		{http.MethodDelete, ""},
	} {
		w := doJSON(r, tc.method, "/collector/not-a-uuid", tc.body)
		require.Equal(t, http.StatusBadRequest, w.Code, "method %s", tc.method)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCollectorNotFound(t *testing.T) {
	r, mock := setupRouter(t)

	mock.ExpectQuery(`SELECT \* FROM "collector_profiles" WHERE id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := doJSON(r, http.MethodGet, "/collector/"+uuid.NewString(), "")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Collector profile not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllCollectors(t *testing.T) {
	r, mock := setupRouter(t)
	mock.MatchExpectationsInOrder(false)
	collectorID := uuid.NewString()
	userID := uuid.NewString()

	mock.ExpectQuery(`SELECT \* FROM "collector_profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "user_id"}).
			AddRow(collectorID, "Jane Doe", "jane@x.com", userID))
	mock.ExpectQuery(`SELECT \* FROM "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "collector_id"}))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow(userID, "jane@x.com"))

	w := doJSON(r, http.MethodGet, "/collector", "")

	require.Equal(t, http.StatusOK, w.Code)

	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, collectorID, got[0]["id"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Full lifecycle: create, read it back, set bio only, delete, read again.
func TestCollectorLifecycle(t *testing.T) {
	r, mock := setupRouter(t)
	mock.MatchExpectationsInOrder(false)
	collectorID := uuid.NewString()
	userID := uuid.NewString()

	// create
	mock.ExpectQuery(`INSERT INTO "collector_profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(collectorID))

	w := doJSON(r, http.MethodPost, "/collector",
		fmt.Sprintf(`{"name":"Jane Doe","email":"jane@x.com","userId":%q}`, userID))
	require.Equal(t, http.StatusCreated, w.Code)

	// read back with relations
	mock.ExpectQuery(`SELECT \* FROM "collector_profiles" WHERE id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "user_id"}).
			AddRow(collectorID, "Jane Doe", "jane@x.com", userID))
	mock.ExpectQuery(`SELECT \* FROM "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "collector_id"}))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow(userID, "jane@x.com"))

	w = doJSON(r, http.MethodGet, "/collector/"+collectorID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Jane Doe", got["name"])

	// partial update, bio only
	mock.ExpectQuery(`SELECT \* FROM "collector_profiles" WHERE id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "user_id"}).
			AddRow(collectorID, "Jane Doe", "jane@x.com", userID))
	mock.ExpectExec(`UPDATE "collector_profiles" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w = doJSON(r, http.MethodPut, "/collector/"+collectorID, `{"bio":"hi"}`)
	require.Equal(t, http.StatusOK, w.Code)
	got = map[string]interface{}{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "hi", got["bio"])
	_, websiteSet := got["website"]
	assert.False(t, websiteSet)

	// delete
	mock.ExpectQuery(`SELECT \* FROM "collector_profiles" WHERE id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "user_id"}).
			AddRow(collectorID, "Jane Doe", "jane@x.com", userID))
	mock.ExpectExec(`DELETE FROM "collector_profiles"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w = doJSON(r, http.MethodDelete, "/collector/"+collectorID, "")
	require.Equal(t, http.StatusOK, w.Code)

	// gone now
	mock.ExpectQuery(`SELECT \* FROM "collector_profiles" WHERE id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w = doJSON(r, http.MethodGet, "/collector/"+collectorID, "")
	require.Equal(t, http.StatusNotFound, w.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}
