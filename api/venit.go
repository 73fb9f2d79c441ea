package api

import (
	"strconv"
	"time"

	"buget/database"
	"buget/middleware"
	"buget/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// VenitHandler serves the income collection.
type VenitHandler struct{}

func NewVenitHandler() *VenitHandler {
	return &VenitHandler{}
}

type CreateVenitRequest struct {
	Suma   decimal.Decimal `json:"suma" binding:"required" example:"5000.00"`
	Moneda string          `json:"moneda" binding:"required" example:"EUR"`
	Data   string          `json:"data" example:"2026-02-10"`
}

type UpdateVenitRequest struct {
	Suma   decimal.Decimal `json:"suma"`
	Moneda string          `json:"moneda"`
	Data   string          `json:"data"`
}

// List returns incomes for the connected-user set
// @Summary Lista veniturilor
// @Description Returneaza veniturile utilizatorului si ale partenerilor conectati, cele mai recent adaugate primele.
// @Tags venituri
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.Venit} "Lista veniturilor"
// @Failure 401 {object} Response "Neautentificat"
// @Router /venituri/ [get]
func (h *VenitHandler) List(c *gin.Context) {
	userIDs, ok := connectedIDs(c)
	if !ok {
		return
	}

	var list []models.Venit
	if err := database.DB.Where("user_id IN ?", userIDs).
		Order("created_at DESC").Find(&list).Error; err != nil {
		InternalError(c, "Interogarea a esuat: "+err.Error())
		return
	}
	Success(c, list)
}

// Create adds an income for the current user
// @Summary Adaugare venit
// @Description Creeaza un venit pentru utilizatorul curent. Data lipsa inseamna azi.
// @Tags venituri
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateVenitRequest true "Venit"
// @Success 200 {object} Response{data=models.Venit} "Venit creat"
// @Failure 400 {object} Response "Date invalide"
// @Router /venituri/ [post]
func (h *VenitHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateVenitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Date invalide: "+err.Error())
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

	data := time.Now()
	if req.Data != "" {
		t, err := parseData(req.Data)
		if err != nil {
			BadRequest(c, "Data trebuie sa fie in formatul 2006-01-02")
			return
		}
		data = t
	}

	venit := models.Venit{UserID: userID, Suma: req.Suma, Moneda: req.Moneda, Data: data}
	if err := database.DB.Create(&venit).Error; err != nil {
		InternalError(c, "Crearea venitului a esuat: "+err.Error())
		return
	}
	SuccessWithMessage(c, "Venit creat", venit)
}

// Get returns one income from the connected-user set
// @Summary Detalii venit
// @Tags venituri
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID venit"
// @Success 200 {object} Response{data=models.Venit} "Venit"
// @Failure 404 {object} Response "Venitul nu exista"
// @Router /venituri/{id}/ [get]
func (h *VenitHandler) Get(c *gin.Context) {
	userIDs, ok := connectedIDs(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID invalid")
		return
	}

	var venit models.Venit
	if err := database.DB.Where("id = ? AND user_id IN ?", id, userIDs).First(&venit).Error; err != nil {
		NotFound(c, "Venitul nu exista")
		return
	}
	Success(c, venit)
}

// Update edits one income from the connected-user set
// @Summary Actualizare venit
// @Tags venituri
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID venit"
// @Param request body UpdateVenitRequest true "Campuri de actualizat"
// @Success 200 {object} Response{data=models.Venit} "Venit actualizat"
// @Failure 400 {object} Response "Date invalide"
// @Failure 404 {object} Response "Venitul nu exista"
// @Router /venituri/{id}/ [put]
func (h *VenitHandler) Update(c *gin.Context) {
	userIDs, ok := connectedIDs(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID invalid")
		return
	}

	var venit models.Venit
	if err := database.DB.Where("id = ? AND user_id IN ?", id, userIDs).First(&venit).Error; err != nil {
		NotFound(c, "Venitul nu exista")
		return
	}

	var req UpdateVenitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Date invalide: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
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
	if req.Data != "" {
		t, err := parseData(req.Data)
		if err != nil {
			BadRequest(c, "Data trebuie sa fie in formatul 2006-01-02")
			return
		}
		updates["data"] = t
	}

	if err := database.DB.Model(&venit).Updates(updates).Error; err != nil {
		InternalError(c, "Actualizarea a esuat: "+err.Error())
		return
	}
	database.DB.First(&venit, venit.ID)
	SuccessWithMessage(c, "Venit actualizat", venit)
}

// Delete removes one income from the connected-user set
// @Summary Stergere venit
// @Tags venituri
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID venit"
// @Success 200 {object} Response "Venit sters"
// @Failure 404 {object} Response "Venitul nu exista"
// @Router /venituri/{id}/ [delete]
func (h *VenitHandler) Delete(c *gin.Context) {
	userIDs, ok := connectedIDs(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID invalid")
		return
	}

	var venit models.Venit
	if err := database.DB.Where("id = ? AND user_id IN ?", id, userIDs).First(&venit).Error; err != nil {
		NotFound(c, "Venitul nu exista")
		return
	}
	if err := database.DB.Delete(&venit).Error; err != nil {
		InternalError(c, "Stergerea a esuat: "+err.Error())
		return
	}
	SuccessWithMessage(c, "Venit sters", nil)
}
