package api

import (
	"strconv"

	"buget/database"
	"buget/middleware"
	"buget/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// FondHandler serves fund movements and their charts.
type FondHandler struct{}

func NewFondHandler() *FondHandler {
	return &FondHandler{}
}

type MiscareFondRequest struct {
	Tip        string          `json:"tip" binding:"required" example:"adauga"`
	Rubrica    string          `json:"rubrica" example:"fond_urgenta"`
	SumaEUR    decimal.Decimal `json:"suma_eur" example:"100.00"`
	SumaRON    decimal.Decimal `json:"suma_ron" example:"0"`
	Observatii string          `json:"observatii"`
}

type UpdateMiscareFondRequest struct {
	Tip        string          `json:"tip"`
	Rubrica    string          `json:"rubrica"`
	SumaEUR    decimal.Decimal `json:"suma_eur"`
	SumaRON    decimal.Decimal `json:"suma_ron"`
	Observatii *string         `json:"observatii"`
}

func tipMiscareValid(tip string) bool {
	return tip == models.TipMiscareAdauga || tip == models.TipMiscareRetrage
}

// FonduriResponse lists all pooled movements with their running totals.
type FonduriResponse struct {
	TotalEUR decimal.Decimal      `json:"total_eur"`
	TotalRON decimal.Decimal      `json:"total_ron"`
	Miscari  []models.MiscareFond `json:"miscari"`
}

// Fonduri returns pooled fund movements and net totals. Amounts are signed,
// so deposits and withdrawals cancel out in the sums.
// @Summary Miscari de fond si totaluri
// @Tags fonduri
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=FonduriResponse} "Miscari si totaluri"
// @Failure 401 {object} Response "Neautentificat"
// @Router /fonduri/ [get]
func (h *FondHandler) Fonduri(c *gin.Context) {
	userIDs, ok := connectedIDs(c)
	if !ok {
		return
	}

	var miscari []models.MiscareFond
	if err := database.DB.Where("user_id IN ?", userIDs).
		Order("data DESC").Find(&miscari).Error; err != nil {
		InternalError(c, "Interogarea a esuat: "+err.Error())
		return
	}

	totalEUR := decimal.Zero
	totalRON := decimal.Zero
	for _, m := range miscari {
		totalEUR = totalEUR.Add(m.SumaEUR)
		totalRON = totalRON.Add(m.SumaRON)
	}

	Success(c, FonduriResponse{TotalEUR: totalEUR, TotalRON: totalRON, Miscari: miscari})
}

// MiscareCreate records a deposit or withdrawal
// @Summary Adaugare miscare de fond
// @Description Creeaza o miscare de fond. Retragerile se salveaza cu suma negativa, depunerile cu suma pozitiva.
// @Tags fonduri
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MiscareFondRequest true "Miscare"
// @Success 200 {object} Response{data=models.MiscareFond} "Miscare creata"
// @Failure 400 {object} Response "Date invalide"
// @Router /fonduri/miscare/ [post]
func (h *FondHandler) MiscareCreate(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req MiscareFondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Date invalide: "+err.Error())
		return
	}
	if !tipMiscareValid(req.Tip) {
		BadRequest(c, "Tipul trebuie sa fie adauga sau retrage")
		return
	}
	if req.SumaEUR.IsZero() && req.SumaRON.IsZero() {
		BadRequest(c, "Trebuie completata suma in EUR sau RON")
		return
	}
	rubrica := req.Rubrica
	if rubrica == "" {
		rubrica = models.RubricaAlteInvestitii
	}
	if !models.RubricaValida(rubrica) {
		BadRequest(c, "Rubrica necunoscuta")
		return
	}

	miscare := models.MiscareFond{
		UserID:     userID,
		Tip:        req.Tip,
		Rubrica:    rubrica,
		SumaEUR:    req.SumaEUR,
		SumaRON:    req.SumaRON,
		Observatii: req.Observatii,
	}
	miscare.NormalizeazaSemn()

	if err := database.DB.Create(&miscare).Error; err != nil {
		InternalError(c, "Crearea miscarii a esuat: "+err.Error())
		return
	}
	SuccessWithMessage(c, "Miscare creata", miscare)
}

// MiscareUpdate edits a movement from the connected-user set
// @Summary Actualizare miscare de fond
// @Description Actualizeaza o miscare. Semnul sumelor se renormalizeaza dupa tipul rezultat.
// @Tags fonduri
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID miscare"
// @Param request body UpdateMiscareFondRequest true "Campuri de actualizat"
// @Success 200 {object} Response{data=models.MiscareFond} "Miscare actualizata"
// @Failure 400 {object} Response "Date invalide"
// @Failure 404 {object} Response "Miscarea nu exista"
// @Router /fonduri/miscare/{id}/ [put]
func (h *FondHandler) MiscareUpdate(c *gin.Context) {
	userIDs, ok := connectedIDs(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID invalid")
		return
	}

	var miscare models.MiscareFond
	if err := database.DB.Where("id = ? AND user_id IN ?", id, userIDs).First(&miscare).Error; err != nil {
		NotFound(c, "Miscarea nu exista")
		return
	}

	var req UpdateMiscareFondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Date invalide: "+err.Error())
		return
	}

	if req.Tip != "" {
		if !tipMiscareValid(req.Tip) {
			BadRequest(c, "Tipul trebuie sa fie adauga sau retrage")
			return
		}
		miscare.Tip = req.Tip
	}
	if req.Rubrica != "" {
		if !models.RubricaValida(req.Rubrica) {
			BadRequest(c, "Rubrica necunoscuta")
			return
		}
		miscare.Rubrica = req.Rubrica
	}
	if !req.SumaEUR.IsZero() {
		miscare.SumaEUR = req.SumaEUR
	}
	if !req.SumaRON.IsZero() {
		miscare.SumaRON = req.SumaRON
	}
	if req.Observatii != nil {
		miscare.Observatii = *req.Observatii
	}
	miscare.NormalizeazaSemn()

	if err := database.DB.Save(&miscare).Error; err != nil {
		InternalError(c, "Actualizarea a esuat: "+err.Error())
		return
	}
	SuccessWithMessage(c, "Miscare actualizata", miscare)
}

// MiscareDelete removes a movement from the connected-user set
// @Summary Stergere miscare de fond
// @Tags fonduri
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID miscare"
// @Success 200 {object} Response "Miscare stearsa"
// @Failure 404 {object} Response "Miscarea nu exista"
// @Router /fonduri/miscare/{id}/ [delete]
func (h *FondHandler) MiscareDelete(c *gin.Context) {
	userIDs, ok := connectedIDs(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID invalid")
		return
	}

	var miscare models.MiscareFond
	if err := database.DB.Where("id = ? AND user_id IN ?", id, userIDs).First(&miscare).Error; err != nil {
		NotFound(c, "Miscarea nu exista")
		return
	}
	if err := database.DB.Delete(&miscare).Error; err != nil {
		InternalError(c, "Stergerea a esuat: "+err.Error())
		return
	}
	SuccessWithMessage(c, "Miscare stearsa", nil)
}

// FonduriGraficResponse is the per-currency net totals chart.
type FonduriGraficResponse struct {
	Labels []string          `json:"labels"`
	Data   []decimal.Decimal `json:"data"`
}

// FonduriGrafic returns net EUR/RON totals for the caller only.
// @Summary Grafic totaluri fonduri
// @Tags fonduri
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=FonduriGraficResponse} "Date grafic"
// @Failure 401 {object} Response "Neautentificat"
// @Router /fonduri/grafic/ [get]
func (h *FondHandler) FonduriGrafic(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	totalEUR, err := sumaColoana(
		database.DB.Model(&models.MiscareFond{}).Where("user_id = ?", userID),
		"suma_eur",
	)
	if err != nil {
		InternalError(c, "Interogarea a esuat: "+err.Error())
		return
	}
	totalRON, err := sumaColoana(
		database.DB.Model(&models.MiscareFond{}).Where("user_id = ?", userID),
		"suma_ron",
	)
	if err != nil {
		InternalError(c, "Interogarea a esuat: "+err.Error())
		return
	}

	Success(c, FonduriGraficResponse{
		Labels: []string{"EUR", "RON"},
		Data:   []decimal.Decimal{totalEUR, totalRON},
	})
}

// TimelineDataset is one currency line of a fund timeline.
type TimelineDataset struct {
	Label string            `json:"label"`
	Data  []decimal.Decimal `json:"data"`
}

// TimelineResponse is a day-bucketed cumulative balance chart.
type TimelineResponse struct {
	Labels   []string          `json:"labels"`
	Datasets []TimelineDataset `json:"datasets"`
}

// buildTimeline folds movements, already sorted by date ascending, into
// per-day sums and then into running balances. Order matters: each day's
// balance builds on the previous one.
func buildTimeline(miscari []models.MiscareFond) TimelineResponse {
	type zi struct {
		data string
		eur  decimal.Decimal
		ron  decimal.Decimal
	}

	var zile []zi
	for _, m := range miscari {
		data := m.Data.Format(dataFormat)
		if len(zile) == 0 || zile[len(zile)-1].data != data {
			zile = append(zile, zi{data: data})
		}
		last := &zile[len(zile)-1]
		last.eur = last.eur.Add(m.SumaEUR)
		last.ron = last.ron.Add(m.SumaRON)
	}

	labels := make([]string, 0, len(zile))
	eur := make([]decimal.Decimal, 0, len(zile))
	ron := make([]decimal.Decimal, 0, len(zile))

	soldEUR := decimal.Zero
	soldRON := decimal.Zero
	for _, z := range zile {
		soldEUR = soldEUR.Add(z.eur)
		soldRON = soldRON.Add(z.ron)
		labels = append(labels, z.data)
		eur = append(eur, soldEUR)
		ron = append(ron, soldRON)
	}

	return TimelineResponse{
		Labels: labels,
		Datasets: []TimelineDataset{
			{Label: "EUR", Data: eur},
			{Label: "RON", Data: ron},
		},
	}
}

// FonduriGraficTimeline returns the caller's cumulative fund balance per day.
// @Summary Grafic evolutie fonduri
// @Tags fonduri
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=TimelineResponse} "Date grafic"
// @Failure 401 {object} Response "Neautentificat"
// @Router /fonduri/grafic/timeline/ [get]
func (h *FondHandler) FonduriGraficTimeline(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var miscari []models.MiscareFond
	if err := database.DB.Where("user_id = ?", userID).
		Order("data ASC, id ASC").Find(&miscari).Error; err != nil {
		InternalError(c, "Interogarea a esuat: "+err.Error())
		return
	}

	Success(c, buildTimeline(miscari))
}

// TimelineExtendedResponse carries the pooled timeline plus one timeline
// per connected user, each starting from zero.
type TimelineExtendedResponse struct {
	Total   TimelineResponse            `json:"total"`
	PerUser map[string]TimelineResponse `json:"per_user"`
}

// FonduriGraficTimelineExtended returns the pooled timeline and a separate
// timeline for every connected user.
// @Summary Grafic evolutie fonduri pe conturi conectate
// @Tags fonduri
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=TimelineExtendedResponse} "Date grafic"
// @Failure 401 {object} Response "Neautentificat"
// @Router /fonduri/grafic/timeline/extended/ [get]
func (h *FondHandler) FonduriGraficTimelineExtended(c *gin.Context) {
	userIDs, ok := connectedIDs(c)
	if !ok {
		return
	}

	var toate []models.MiscareFond
	if err := database.DB.Where("user_id IN ?", userIDs).
		Order("data ASC, id ASC").Find(&toate).Error; err != nil {
		InternalError(c, "Interogarea a esuat: "+err.Error())
		return
	}

	var users []models.User
	if err := database.DB.Where("id IN ?", userIDs).Find(&users).Error; err != nil {
		InternalError(c, "Interogarea a esuat: "+err.Error())
		return
	}

	perUser := make(map[string]TimelineResponse, len(users))
	for _, u := range users {
		ale := make([]models.MiscareFond, 0, len(toate))
		for _, m := range toate {
			if m.UserID == u.ID {
				ale = append(ale, m)
			}
		}
		perUser[u.Username] = buildTimeline(ale)
	}

	Success(c, TimelineExtendedResponse{
		Total:   buildTimeline(toate),
		PerUser: perUser,
	})
}
