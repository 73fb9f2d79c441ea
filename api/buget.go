package api

import (
	"fmt"
	"sort"
	"time"

	"buget/database"
	"buget/middleware"
	"buget/models"
	"buget/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BugetHandler serves the budget and saving aggregates.
type BugetHandler struct{}

func NewBugetHandler() *BugetHandler {
	return &BugetHandler{}
}

// sumaColoana runs a COALESCE(SUM(...), 0) over the query and returns the
// total as a decimal.
func sumaColoana(q *gorm.DB, coloana string) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	if err := q.Select(fmt.Sprintf("COALESCE(SUM(%s), 0) AS total", coloana)).Scan(&row).Error; err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// VenitTotalResponse is the calendar-month income total.
type VenitTotalResponse struct {
	Start      string          `json:"start"`
	End        string          `json:"end"`
	VenitTotal decimal.Decimal `json:"venit_total"`
}

// VenitTotalLunar sums pooled income over the current calendar month.
// This endpoint keeps calendar-month boundaries, unlike the rest of the
// aggregates which use the 26-25 budget month.
// @Summary Venit total pe luna calendaristica
// @Tags statistici
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=VenitTotalResponse} "Total venit"
// @Failure 401 {object} Response "Neautentificat"
// @Router /venit/total/ [get]
func (h *BugetHandler) VenitTotalLunar(c *gin.Context) {
	userIDs, ok := connectedIDs(c)
	if !ok {
		return
	}

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location())

	total, err := sumaColoana(
		database.DB.Model(&models.Venit{}).
			Where("user_id IN ?", userIDs).
			Where("data BETWEEN ? AND ?", start, end),
		"suma",
	)
	if err != nil {
		InternalError(c, "Interogarea a esuat: "+err.Error())
		return
	}

	Success(c, VenitTotalResponse{
		Start:      start.Format(dataFormat),
		End:        end.Format(dataFormat),
		VenitTotal: total,
	})
}

// VenitStatusResponse is the income histogram keyed by budget month.
type VenitStatusResponse struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// VenitStatusLunar buckets every pooled income by its budget-month key and
// sums per bucket. Chart data, so amounts become float64 here.
// @Summary Istoricul veniturilor pe luni bugetare
// @Tags statistici
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=VenitStatusResponse} "Histograma veniturilor"
// @Failure 401 {object} Response "Neautentificat"
// @Router /venit/status/ [get]
func (h *BugetHandler) VenitStatusLunar(c *gin.Context) {
	userIDs, ok := connectedIDs(c)
	if !ok {
		return
	}

	var venituri []models.Venit
	if err := database.DB.Where("user_id IN ?", userIDs).Find(&venituri).Error; err != nil {
		InternalError(c, "Interogarea a esuat: "+err.Error())
		return
	}

	luni := map[string]float64{}
	for _, v := range venituri {
		luni[utils.CheieLuna(v.Data)] += v.Suma.InexactFloat64()
	}

	labels := make([]string, 0, len(luni))
	for luna := range luni {
		labels = append(labels, luna)
	}
	sort.Strings(labels)

	data := make([]float64, len(labels))
	for i, luna := range labels {
		data[i] = luni[luna]
	}

	Success(c, VenitStatusResponse{Labels: labels, Data: data})
}

// BugetLunarResponse is the current budget-month summary.
type BugetLunarResponse struct {
	Luna       string          `json:"luna"`
	Venit      decimal.Decimal `json:"venit"`
	Cheltuieli decimal.Decimal `json:"cheltuieli"`
	Fixe       decimal.Decimal `json:"fixe"`
	Variabile  decimal.Decimal `json:"variabile"`
	Economii   decimal.Decimal `json:"economii"`
}

// BugetLunar sums pooled income and expenses over the current budget month.
// @Summary Sumar buget pe luna bugetara
// @Tags statistici
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=BugetLunarResponse} "Sumar buget"
// @Failure 401 {object} Response "Neautentificat"
// @Router /buget/lunar/ [get]
func (h *BugetHandler) BugetLunar(c *gin.Context) {
	userIDs, ok := connectedIDs(c)
	if !ok {
		return
	}

	start, end := utils.LunaBugetara(time.Now())

	venit, err := sumaColoana(
		database.DB.Model(&models.Venit{}).
			Where("user_id IN ?", userIDs).
			Where("data BETWEEN ? AND ?", start, end),
		"suma",
	)
	if err != nil {
		InternalError(c, "Interogarea a esuat: "+err.Error())
		return
	}

	fixe, err := sumaColoana(
		database.DB.Model(&models.CheltuialaFixa{}).
			Where("user_id IN ?", userIDs).
			Where("data BETWEEN ? AND ?", start, end),
		"suma",
	)
	if err != nil {
		InternalError(c, "Interogarea a esuat: "+err.Error())
		return
	}

	variabile, err := sumaColoana(
		database.DB.Model(&models.CheltuialaVariabila{}).
			Where("user_id IN ?", userIDs).
			Where("data BETWEEN ? AND ?", start, end),
		"suma",
	)
	if err != nil {
		InternalError(c, "Interogarea a esuat: "+err.Error())
		return
	}

	cheltuieli := fixe.Add(variabile)

	Success(c, BugetLunarResponse{
		Luna:       fmt.Sprintf("%s – %s", start.Format(dataFormat), end.Format(dataFormat)),
		Venit:      venit,
		Cheltuieli: cheltuieli,
		Fixe:       fixe,
		Variabile:  variabile,
		Economii:   venit.Sub(cheltuieli),
	})
}

// CategorieTotal is one slice of the category breakdown.
type CategorieTotal struct {
	Categorie string          `json:"categorie"`
	Total     decimal.Decimal `json:"total"`
}

// GraficeLunaResponse is the category breakdown for the budget month.
type GraficeLunaResponse struct {
	Luna       string           `json:"luna"`
	Venit      decimal.Decimal  `json:"venit"`
	Cheltuieli []CategorieTotal `json:"cheltuieli"`
	Economii   decimal.Decimal  `json:"economii"`
}

// GraficeLuna groups pooled variable expenses by category over the current
// budget month.
// @Summary Grafic cheltuieli pe categorii
// @Tags statistici
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=GraficeLunaResponse} "Date grafic"
// @Failure 401 {object} Response "Neautentificat"
// @Router /grafice/luna/ [get]
func (h *BugetHandler) GraficeLuna(c *gin.Context) {
	userIDs, ok := connectedIDs(c)
	if !ok {
		return
	}

	start, end := utils.LunaBugetara(time.Now())

	var cheltuieli []CategorieTotal
	if err := database.DB.Model(&models.CheltuialaVariabila{}).
		Where("user_id IN ?", userIDs).
		Where("data BETWEEN ? AND ?", start, end).
		Select("categorie, COALESCE(SUM(suma), 0) AS total").
		Group("categorie").
		Scan(&cheltuieli).Error; err != nil {
		InternalError(c, "Interogarea a esuat: "+err.Error())
		return
	}

	venit, err := sumaColoana(
		database.DB.Model(&models.Venit{}).
			Where("user_id IN ?", userIDs).
			Where("data BETWEEN ? AND ?", start, end),
		"suma",
	)
	if err != nil {
		InternalError(c, "Interogarea a esuat: "+err.Error())
		return
	}

	total := decimal.Zero
	for _, ch := range cheltuieli {
		total = total.Add(ch.Total)
	}

	Success(c, GraficeLunaResponse{
		Luna:       fmt.Sprintf("%s – %s", start.Format(dataFormat), end.Format(dataFormat)),
		Venit:      venit,
		Cheltuieli: cheltuieli,
		Economii:   venit.Sub(total),
	})
}

// EconomieLunaraResponse is the stored result of a month recomputation.
type EconomieLunaraResponse struct {
	Luna       string          `json:"luna"`
	Venit      decimal.Decimal `json:"venit"`
	Cheltuieli decimal.Decimal `json:"cheltuieli"`
	Economie   decimal.Decimal `json:"economie"`
}

// CalculeazaEconomii recomputes income minus expenses for the current budget
// month and stores it on the caller's (user, luna) row. Repeated calls
// overwrite the stored value, they never accumulate.
// @Summary Calculeaza si salveaza economia lunara
// @Tags economii
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=EconomieLunaraResponse} "Economie salvata"
// @Failure 401 {object} Response "Neautentificat"
// @Router /economii/calculeaza/ [post]
func (h *BugetHandler) CalculeazaEconomii(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	userIDs, ok := connectedIDs(c)
	if !ok {
		return
	}

	start, end := utils.LunaBugetara(time.Now())
	luna := start.Format("2006-01")

	venit, err := sumaColoana(
		database.DB.Model(&models.Venit{}).
			Where("user_id IN ?", userIDs).
			Where("data BETWEEN ? AND ?", start, end),
		"suma",
	)
	if err != nil {
		InternalError(c, "Interogarea a esuat: "+err.Error())
		return
	}

	fixe, err := sumaColoana(
		database.DB.Model(&models.CheltuialaFixa{}).
			Where("user_id IN ?", userIDs).
			Where("data BETWEEN ? AND ?", start, end),
		"suma",
	)
	if err != nil {
		InternalError(c, "Interogarea a esuat: "+err.Error())
		return
	}

	variabile, err := sumaColoana(
		database.DB.Model(&models.CheltuialaVariabila{}).
			Where("user_id IN ?", userIDs).
			Where("data BETWEEN ? AND ?", start, end),
		"suma",
	)
	if err != nil {
		InternalError(c, "Interogarea a esuat: "+err.Error())
		return
	}

	cheltuieli := fixe.Add(variabile)
	economie := venit.Sub(cheltuieli)

	// the row belongs to the caller alone, even when the sums are pooled
	econ := models.EconomieLunara{UserID: userID, Luna: luna, Sold: economie}
	if err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "luna"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"sold": economie}),
	}).Create(&econ).Error; err != nil {
		InternalError(c, "Salvarea economiei a esuat: "+err.Error())
		return
	}

	Success(c, EconomieLunaraResponse{
		Luna:       luna,
		Venit:      venit,
		Cheltuieli: cheltuieli,
		Economie:   economie,
	})
}

// IstoricEconomii returns the caller's stored monthly savings, oldest first.
// @Summary Istoricul economiilor lunare
// @Tags economii
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.EconomieLunara} "Istoric"
// @Failure 401 {object} Response "Neautentificat"
// @Router /economii/istoric/ [get]
func (h *BugetHandler) IstoricEconomii(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var istoric []models.EconomieLunara
	if err := database.DB.Where("user_id = ?", userID).
		Order("luna ASC").Find(&istoric).Error; err != nil {
		InternalError(c, "Interogarea a esuat: "+err.Error())
		return
	}
	Success(c, istoric)
}

// EconomiiVacantaSumarResponse is the vacation pot balance.
type EconomiiVacantaSumarResponse struct {
	PuseDeoparte decimal.Decimal `json:"puse_deoparte"`
	Cheltuite    decimal.Decimal `json:"cheltuite"`
	Ramase       decimal.Decimal `json:"ramase"`
}

// EconomiiVacantaSumar balances vacation savings against vacation spending.
// Scoped to the caller only, not the connected set.
// @Summary Sumar economii de vacanta
// @Tags economii
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=EconomiiVacantaSumarResponse} "Sumar vacanta"
// @Failure 401 {object} Response "Neautentificat"
// @Router /economii/vacanta/ [get]
func (h *BugetHandler) EconomiiVacantaSumar(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	puse, err := sumaColoana(
		database.DB.Model(&models.EconomieVacanta{}).
			Where("user_id = ? AND tip = ?", userID, models.TipVacantaEconomii),
		"suma",
	)
	if err != nil {
		InternalError(c, "Interogarea a esuat: "+err.Error())
		return
	}

	cheltuite, err := sumaColoana(
		database.DB.Model(&models.CheltuialaVariabila{}).
			Where("user_id = ? AND categorie = ?", userID, models.CategorieVacanta),
		"suma",
	)
	if err != nil {
		InternalError(c, "Interogarea a esuat: "+err.Error())
		return
	}

	Success(c, EconomiiVacantaSumarResponse{
		PuseDeoparte: puse,
		Cheltuite:    cheltuite,
		Ramase:       puse.Sub(cheltuite),
	})
}
