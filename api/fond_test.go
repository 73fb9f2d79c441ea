package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"buget/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFondHandler_MiscareCreateRetragere(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `miscari_fond`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/fonduri/miscare/", NewFondHandler().MiscareCreate)

	// retragerea se trimite cu suma pozitiva si se salveaza negativa
	body := `{"tip":"retrage","rubrica":"fond_urgenta","suma_eur":50}`
	req := httptest.NewRequest("POST", "/fonduri/miscare/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "-50", data["suma_eur"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFondHandler_MiscareCreateFaraSuma(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/fonduri/miscare/", NewFondHandler().MiscareCreate)

	body := `{"tip":"adauga","rubrica":"xtb"}`
	req := httptest.NewRequest("POST", "/fonduri/miscare/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Trebuie completata suma in EUR sau RON", resp["message"])
}

func TestFondHandler_MiscareCreateRubricaImplicita(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `miscari_fond`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/fonduri/miscare/", NewFondHandler().MiscareCreate)

	body := `{"tip":"adauga","suma_ron":200}`
	req := httptest.NewRequest("POST", "/fonduri/miscare/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "alte_investitii", data["rubrica"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFondHandler_Fonduri(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	expectFaraConexiuni(mock)
	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `miscari_fond`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "tip", "rubrica", "suma_eur", "suma_ron", "data"}).
			AddRow(1, 1, "adauga", "fond_urgenta", "100.00", "0", now).
			AddRow(2, 1, "retrage", "fond_urgenta", "-30.00", "0", now))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/fonduri/", NewFondHandler().Fonduri)

	req := httptest.NewRequest("GET", "/fonduri/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	// sumele semnate se anuleaza reciproc in total
	assert.Equal(t, "70", data["total_eur"])
	assert.Equal(t, "0", data["total_ron"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildTimeline(t *testing.T) {
	zi := func(d int) time.Time {
		return time.Date(2024, time.March, d, 0, 0, 0, 0, time.Local)
	}
	suma := func(s string) decimal.Decimal {
		v, err := decimal.NewFromString(s)
		require.NoError(t, err)
		return v
	}

	miscari := []models.MiscareFond{
		{Data: zi(1), SumaEUR: suma("100")},
		{Data: zi(2), SumaEUR: suma("-30")},
		{Data: zi(3), SumaEUR: suma("10")},
	}

	tl := buildTimeline(miscari)

	require.Len(t, tl.Labels, 3)
	assert.Equal(t, []string{"2024-03-01", "2024-03-02", "2024-03-03"}, tl.Labels)
	require.Len(t, tl.Datasets, 2)
	assert.Equal(t, "EUR", tl.Datasets[0].Label)
	assert.Equal(t, "100", tl.Datasets[0].Data[0].String())
	assert.Equal(t, "70", tl.Datasets[0].Data[1].String())
	assert.Equal(t, "80", tl.Datasets[0].Data[2].String())
}

func TestBuildTimelineZileComasate(t *testing.T) {
	zi := func(d int) time.Time {
		return time.Date(2024, time.March, d, 0, 0, 0, 0, time.Local)
	}

	// doua miscari in aceeasi zi formeaza un singur punct
	miscari := []models.MiscareFond{
		{Data: zi(1), SumaRON: decimal.NewFromInt(500)},
		{Data: zi(1), SumaRON: decimal.NewFromInt(-200)},
		{Data: zi(5), SumaRON: decimal.NewFromInt(100)},
	}

	tl := buildTimeline(miscari)

	require.Len(t, tl.Labels, 2)
	assert.Equal(t, "300", tl.Datasets[1].Data[0].String())
	assert.Equal(t, "400", tl.Datasets[1].Data[1].String())
}

func TestBuildTimelineGol(t *testing.T) {
	tl := buildTimeline(nil)
	assert.Empty(t, tl.Labels)
	require.Len(t, tl.Datasets, 2)
	assert.Empty(t, tl.Datasets[0].Data)
}

func TestFondHandler_MiscareUpdateInexistenta(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	expectFaraConexiuni(mock)
	mock.ExpectQuery("SELECT .* FROM `miscari_fond`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.PUT("/fonduri/miscare/:id/", NewFondHandler().MiscareUpdate)

	body := `{"suma_eur":25}`
	req := httptest.NewRequest("PUT", "/fonduri/miscare/99/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Miscarea nu exista", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}
