package api

import (
	"strconv"

	"buget/database"
	"buget/middleware"
	"buget/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// EconomieVacantaHandler serves the vacation-saving collection.
type EconomieVacantaHandler struct{}

func NewEconomieVacantaHandler() *EconomieVacantaHandler {
	return &EconomieVacantaHandler{}
}

type CreateEconomieVacantaRequest struct {
	Tip    string          `json:"tip" binding:"required" example:"economii"`
	Suma   decimal.Decimal `json:"suma" binding:"required" example:"200.00"`
	Moneda string          `json:"moneda" binding:"required" example:"EUR"`
}

type UpdateEconomieVacantaRequest struct {
	Tip    string          `json:"tip"`
	Suma   decimal.Decimal `json:"suma"`
	Moneda string          `json:"moneda"`
}

func tipVacantaValid(tip string) bool {
	return tip == models.TipVacantaEconomii || tip == models.TipVacantaCheltuieli
}

// List returns vacation savings for the connected-user set
// @Summary Lista economiilor de vacanta
// @Tags economii-vacanta
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.EconomieVacanta} "Lista economiilor"
// @Failure 401 {object} Response "Neautentificat"
// @Router /economii-vacanta/ [get]
func (h *EconomieVacantaHandler) List(c *gin.Context) {
	userIDs, ok := connectedIDs(c)
	if !ok {
		return
	}

	var list []models.EconomieVacanta
	if err := database.DB.Where("user_id IN ?", userIDs).
		Order("data DESC").Find(&list).Error; err != nil {
		InternalError(c, "Interogarea a esuat: "+err.Error())
		return
	}
	Success(c, list)
}

// Create adds a vacation-saving entry for the current user. The date is
// set automatically.
// @Summary Adaugare economie de vacanta
// @Tags economii-vacanta
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateEconomieVacantaRequest true "Economie"
// @Success 200 {object} Response{data=models.EconomieVacanta} "Economie creata"
// @Failure 400 {object} Response "Date invalide"
// @Router /economii-vacanta/ [post]
func (h *EconomieVacantaHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateEconomieVacantaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Date invalide: "+err.Error())
		return
	}
	if !tipVacantaValid(req.Tip) {
		BadRequest(c, "Tipul trebuie sa fie economii sau cheltuieli")
		return
	}
	if !req.Suma.IsPositive() {
		BadRequest(c, "Suma trebuie sa fie pozitiva")
		return
	}
	if !models.MonedaValida(req.Moneda) {
		BadRequest(c, "Moneda trebuie sa fie EUR sau RON")
		return
	}

	econ := models.EconomieVacanta{
		UserID: userID,
		Tip:    req.Tip,
		Suma:   req.Suma,
		Moneda: req.Moneda,
	}
	if err := database.DB.Create(&econ).Error; err != nil {
		InternalError(c, "Crearea economiei a esuat: "+err.Error())
		return
	}
	SuccessWithMessage(c, "Economie creata", econ)
}

// Get returns one vacation-saving entry
// @Summary Detalii economie de vacanta
// @Tags economii-vacanta
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID economie"
// @Success 200 {object} Response{data=models.EconomieVacanta} "Economie"
// @Failure 404 {object} Response "Economia nu exista"
// @Router /economii-vacanta/{id}/ [get]
func (h *EconomieVacantaHandler) Get(c *gin.Context) {
	userIDs, ok := connectedIDs(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID invalid")
		return
	}

	var econ models.EconomieVacanta
	if err := database.DB.Where("id = ? AND user_id IN ?", id, userIDs).First(&econ).Error; err != nil {
		NotFound(c, "Economia nu exista")
		return
	}
	Success(c, econ)
}

// Update edits one vacation-saving entry
// @Summary Actualizare economie de vacanta
// @Tags economii-vacanta
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID economie"
// @Param request body UpdateEconomieVacantaRequest true "Campuri de actualizat"
// @Success 200 {object} Response{data=models.EconomieVacanta} "Economie actualizata"
// @Failure 404 {object} Response "Economia nu exista"
// @Router /economii-vacanta/{id}/ [put]
func (h *EconomieVacantaHandler) Update(c *gin.Context) {
	userIDs, ok := connectedIDs(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID invalid")
		return
	}

	var econ models.EconomieVacanta
	if err := database.DB.Where("id = ? AND user_id IN ?", id, userIDs).First(&econ).Error; err != nil {
		NotFound(c, "Economia nu exista")
		return
	}

	var req UpdateEconomieVacantaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Date invalide: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Tip != "" {
		if !tipVacantaValid(req.Tip) {
			BadRequest(c, "Tipul trebuie sa fie economii sau cheltuieli")
			return
		}
		updates["tip"] = req.Tip
	}
	if req.Suma.IsPositive() {
		updates["suma"] = req.Suma
	}
	if req.Moneda != "" {
		if !models.MonedaValida(req.Moneda) {
			BadRequest(c, "Moneda trebuie sa fie EUR sau RON")
			return
		}
		updates["moneda"] = req.Moneda
	}

	if err := database.DB.Model(&econ).Updates(updates).Error; err != nil {
		InternalError(c, "Actualizarea a esuat: "+err.Error())
		return
	}
	database.DB.First(&econ, econ.ID)
	SuccessWithMessage(c, "Economie actualizata", econ)
}

// Delete removes one vacation-saving entry
// @Summary Stergere economie de vacanta
// @Tags economii-vacanta
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID economie"
// @Success 200 {object} Response "Economie stearsa"
// @Failure 404 {object} Response "Economia nu exista"
// @Router /economii-vacanta/{id}/ [delete]
func (h *EconomieVacantaHandler) Delete(c *gin.Context) {
	userIDs, ok := connectedIDs(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID invalid")
		return
	}

	var econ models.EconomieVacanta
	if err := database.DB.Where("id = ? AND user_id IN ?", id, userIDs).First(&econ).Error; err != nil {
		NotFound(c, "Economia nu exista")
		return
	}
	if err := database.DB.Delete(&econ).Error; err != nil {
		InternalError(c, "Stergerea a esuat: "+err.Error())
		return
	}
	SuccessWithMessage(c, "Economie stearsa", nil)
}
