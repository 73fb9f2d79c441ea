package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEconomieVacantaHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `economii_vacanta`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/economii-vacanta/", NewEconomieVacantaHandler().Create)

	body := `{"tip":"economii","suma":200,"moneda":"EUR"}`
	req := httptest.NewRequest("POST", "/economii-vacanta/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEconomieVacantaHandler_CreateTipInvalid(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/economii-vacanta/", NewEconomieVacantaHandler().Create)

	body := `{"tip":"altceva","suma":200,"moneda":"EUR"}`
	req := httptest.NewRequest("POST", "/economii-vacanta/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestEconomieVacantaHandler_List(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	expectFaraConexiuni(mock)
	mock.ExpectQuery("SELECT .* FROM `economii_vacanta`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "tip", "suma", "moneda"}).
			AddRow(1, 1, "economii", "200.00", "EUR"))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/economii-vacanta/", NewEconomieVacantaHandler().List)

	req := httptest.NewRequest("GET", "/economii-vacanta/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	list := resp["data"].([]interface{})
	require.Len(t, list, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}
