package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// expectFaraConexiuni mocks the connected-set lookup for a user with no
// accepted bridges.
func expectFaraConexiuni(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("SELECT .* FROM `user_bridges`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "from_user_id", "to_user_id", "accepted"}))
}

func TestVenitHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `venituri`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/venituri/", NewVenitHandler().Create)

	body := `{"suma":5000,"moneda":"EUR","data":"2026-02-10"}`
	req := httptest.NewRequest("POST", "/venituri/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Venit creat", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVenitHandler_CreateMonedaInvalida(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/venituri/", NewVenitHandler().Create)

	body := `{"suma":5000,"moneda":"USD"}`
	req := httptest.NewRequest("POST", "/venituri/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Moneda trebuie sa fie EUR sau RON", resp["message"])
}

func TestVenitHandler_CreateSumaNegativa(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/venituri/", NewVenitHandler().Create)

	body := `{"suma":-100,"moneda":"EUR"}`
	req := httptest.NewRequest("POST", "/venituri/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestVenitHandler_ListCuPartenerConectat(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// utilizatorul 1 are o punte acceptata cu utilizatorul 2
	mock.ExpectQuery("SELECT .* FROM `user_bridges`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "from_user_id", "to_user_id", "accepted"}).
			AddRow(1, 1, 2, true))

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `venituri`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "suma", "moneda", "data", "created_at"}).
			AddRow(10, 1, "5000.00", "RON", now, now).
			AddRow(11, 2, "300.00", "EUR", now, now))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/venituri/", NewVenitHandler().List)

	req := httptest.NewRequest("GET", "/venituri/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	list := resp["data"].([]interface{})
	// veniturile partenerului apar in lista
	assert.Len(t, list, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVenitHandler_GetInexistent(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	expectFaraConexiuni(mock)
	mock.ExpectQuery("SELECT .* FROM `venituri`").WillReturnError(gorm.ErrRecordNotFound)

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/venituri/:id/", NewVenitHandler().Get)

	req := httptest.NewRequest("GET", "/venituri/99/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Venitul nu exista", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVenitHandler_Delete(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	expectFaraConexiuni(mock)
	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `venituri`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "suma", "moneda", "data", "created_at"}).
			AddRow(10, 1, "5000.00", "RON", now, now))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `venituri`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.DELETE("/venituri/:id/", NewVenitHandler().Delete)

	req := httptest.NewRequest("DELETE", "/venituri/10/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Venit sters", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}
