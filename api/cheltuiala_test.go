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
)

func TestCheltuialaFixaHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `cheltuieli_fixe`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/cheltuieli-fixe/", NewCheltuialaFixaHandler().Create)

	body := `{"descriere":"Chirie","suma":350,"moneda":"EUR","data":"2026-02-01"}`
	req := httptest.NewRequest("POST", "/cheltuieli-fixe/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Cheltuiala creata", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCheltuialaFixaHandler_CreateFaraDescriere(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/cheltuieli-fixe/", NewCheltuialaFixaHandler().Create)

	body := `{"suma":350,"moneda":"EUR"}`
	req := httptest.NewRequest("POST", "/cheltuieli-fixe/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestCheltuialaVariabilaHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `cheltuieli_variabile`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/cheltuieli-variabile/", NewCheltuialaVariabilaHandler().Create)

	body := `{"categorie":"alimente","suma":120,"moneda":"RON"}`
	req := httptest.NewRequest("POST", "/cheltuieli-variabile/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCheltuialaVariabilaHandler_CreateCategorieInvalida(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/cheltuieli-variabile/", NewCheltuialaVariabilaHandler().Create)

	body := `{"categorie":"inexistenta","suma":120,"moneda":"RON"}`
	req := httptest.NewRequest("POST", "/cheltuieli-variabile/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestCheltuialaVariabilaHandler_Categorii(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.GET("/cheltuieli-variabile/categorii/", NewCheltuialaVariabilaHandler().Categorii)

	req := httptest.NewRequest("GET", "/cheltuieli-variabile/categorii/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	list := resp["data"].([]interface{})
	assert.Len(t, list, 12)
	assert.Contains(t, list, "alimente")
	assert.Contains(t, list, "vacanta_cheltuita")
}

func TestCheltuialaVariabilaHandler_List(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	expectFaraConexiuni(mock)
	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `cheltuieli_variabile`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "categorie", "suma", "moneda", "data"}).
			AddRow(1, 1, "alimente", "120.00", "RON", now))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/cheltuieli-variabile/", NewCheltuialaVariabilaHandler().List)

	req := httptest.NewRequest("GET", "/cheltuieli-variabile/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
