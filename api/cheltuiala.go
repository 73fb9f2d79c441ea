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

// CheltuialaFixaHandler serves the fixed-expense collection.
type CheltuialaFixaHandler struct{}

func NewCheltuialaFixaHandler() *CheltuialaFixaHandler {
	return &CheltuialaFixaHandler{}
}

type CreateCheltuialaFixaRequest struct {
	Descriere string          `json:"descriere" binding:"required,max=100" example:"Chirie"`
	Suma      decimal.Decimal `json:"suma" binding:"required" example:"350.00"`
	Moneda    string          `json:"moneda" binding:"required" example:"EUR"`
	Data      string          `json:"data" example:"2026-02-01"`
}

type UpdateCheltuialaFixaRequest struct {
	Descriere string          `json:"descriere"`
	Suma      decimal.Decimal `json:"suma"`
	Moneda    string          `json:"moneda"`
	Data      string          `json:"data"`
}

// List returns fixed expenses for the connected-user set
// @Summary Lista cheltuielilor fixe
// @Description Returneaza cheltuielile fixe ale setului de utilizatori conectati, ordonate dupa data aleasa, descrescator.
// @Tags cheltuieli-fixe
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.CheltuialaFixa} "Lista cheltuielilor"
// @Failure 401 {object} Response "Neautentificat"
// @Router /cheltuieli-fixe/ [get]
func (h *CheltuialaFixaHandler) List(c *gin.Context) {
	userIDs, ok := connectedIDs(c)
	if !ok {
		return
	}

	var list []models.CheltuialaFixa
	if err := database.DB.Where("user_id IN ?", userIDs).
		Order("data DESC").Find(&list).Error; err != nil {
		InternalError(c, "Interogarea a esuat: "+err.Error())
		return
	}
	Success(c, list)
}

// Create adds a fixed expense for the current user
// @Summary Adaugare cheltuiala fixa
// @Tags cheltuieli-fixe
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCheltuialaFixaRequest true "Cheltuiala"
// @Success 200 {object} Response{data=models.CheltuialaFixa} "Cheltuiala creata"
// @Failure 400 {object} Response "Date invalide"
// @Router /cheltuieli-fixe/ [post]
func (h *CheltuialaFixaHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateCheltuialaFixaRequest
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

	ch := models.CheltuialaFixa{
		UserID:    userID,
		Descriere: req.Descriere,
		Suma:      req.Suma,
		Moneda:    req.Moneda,
		Data:      data,
	}
	if err := database.DB.Create(&ch).Error; err != nil {
		InternalError(c, "Crearea cheltuielii a esuat: "+err.Error())
		return
	}
	SuccessWithMessage(c, "Cheltuiala creata", ch)
}

// Get returns one fixed expense
// @Summary Detalii cheltuiala fixa
// @Tags cheltuieli-fixe
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID cheltuiala"
// @Success 200 {object} Response{data=models.CheltuialaFixa} "Cheltuiala"
// @Failure 404 {object} Response "Cheltuiala nu exista"
// @Router /cheltuieli-fixe/{id}/ [get]
func (h *CheltuialaFixaHandler) Get(c *gin.Context) {
	userIDs, ok := connectedIDs(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID invalid")
		return
	}

	var ch models.CheltuialaFixa
	if err := database.DB.Where("id = ? AND user_id IN ?", id, userIDs).First(&ch).Error; err != nil {
		NotFound(c, "Cheltuiala nu exista")
		return
	}
	Success(c, ch)
}

// Update edits one fixed expense
// @Summary Actualizare cheltuiala fixa
// @Tags cheltuieli-fixe
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID cheltuiala"
// @Param request body UpdateCheltuialaFixaRequest true "Campuri de actualizat"
// @Success 200 {object} Response{data=models.CheltuialaFixa} "Cheltuiala actualizata"
// @Failure 404 {object} Response "Cheltuiala nu exista"
// @Router /cheltuieli-fixe/{id}/ [put]
func (h *CheltuialaFixaHandler) Update(c *gin.Context) {
	userIDs, ok := connectedIDs(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID invalid")
		return
	}

	var ch models.CheltuialaFixa
	if err := database.DB.Where("id = ? AND user_id IN ?", id, userIDs).First(&ch).Error; err != nil {
		NotFound(c, "Cheltuiala nu exista")
		return
	}

	var req UpdateCheltuialaFixaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Date invalide: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Descriere != "" {
		updates["descriere"] = req.Descriere
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
	if req.Data != "" {
		t, err := parseData(req.Data)
		if err != nil {
			BadRequest(c, "Data trebuie sa fie in formatul 2006-01-02")
			return
		}
		updates["data"] = t
	}

	if err := database.DB.Model(&ch).Updates(updates).Error; err != nil {
		InternalError(c, "Actualizarea a esuat: "+err.Error())
		return
	}
	database.DB.First(&ch, ch.ID)
	SuccessWithMessage(c, "Cheltuiala actualizata", ch)
}

// Delete removes one fixed expense
// @Summary Stergere cheltuiala fixa
// @Tags cheltuieli-fixe
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID cheltuiala"
// @Success 200 {object} Response "Cheltuiala stearsa"
// @Failure 404 {object} Response "Cheltuiala nu exista"
// @Router /cheltuieli-fixe/{id}/ [delete]
func (h *CheltuialaFixaHandler) Delete(c *gin.Context) {
	userIDs, ok := connectedIDs(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID invalid")
		return
	}

	var ch models.CheltuialaFixa
	if err := database.DB.Where("id = ? AND user_id IN ?", id, userIDs).First(&ch).Error; err != nil {
		NotFound(c, "Cheltuiala nu exista")
		return
	}
	if err := database.DB.Delete(&ch).Error; err != nil {
		InternalError(c, "Stergerea a esuat: "+err.Error())
		return
	}
	SuccessWithMessage(c, "Cheltuiala stearsa", nil)
}

// CheltuialaVariabilaHandler serves the variable-expense collection.
type CheltuialaVariabilaHandler struct{}

func NewCheltuialaVariabilaHandler() *CheltuialaVariabilaHandler {
	return &CheltuialaVariabilaHandler{}
}

type CreateCheltuialaVariabilaRequest struct {
	Categorie string          `json:"categorie" binding:"required" example:"alimente"`
	Suma      decimal.Decimal `json:"suma" binding:"required" example:"45.50"`
	Moneda    string          `json:"moneda" binding:"required" example:"EUR"`
	Data      string          `json:"data" example:"2026-02-14"`
}

type UpdateCheltuialaVariabilaRequest struct {
	Categorie string          `json:"categorie"`
	Suma      decimal.Decimal `json:"suma"`
	Moneda    string          `json:"moneda"`
	Data      string          `json:"data"`
}

// Categorii lists the variable-expense categories
// @Summary Lista categoriilor
// @Tags cheltuieli-variabile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]string} "Categorii"
// @Router /cheltuieli-variabile/categorii/ [get]
func (h *CheltuialaVariabilaHandler) Categorii(c *gin.Context) {
	Success(c, models.CategoriiVariabile())
}

// List returns variable expenses for the connected-user set
// @Summary Lista cheltuielilor variabile
// @Tags cheltuieli-variabile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.CheltuialaVariabila} "Lista cheltuielilor"
// @Failure 401 {object} Response "Neautentificat"
// @Router /cheltuieli-variabile/ [get]
func (h *CheltuialaVariabilaHandler) List(c *gin.Context) {
	userIDs, ok := connectedIDs(c)
	if !ok {
		return
	}

	var list []models.CheltuialaVariabila
	if err := database.DB.Where("user_id IN ?", userIDs).
		Order("data DESC").Find(&list).Error; err != nil {
		InternalError(c, "Interogarea a esuat: "+err.Error())
		return
	}
	Success(c, list)
}

// Create adds a variable expense for the current user
// @Summary Adaugare cheltuiala variabila
// @Tags cheltuieli-variabile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCheltuialaVariabilaRequest true "Cheltuiala"
// @Success 200 {object} Response{data=models.CheltuialaVariabila} "Cheltuiala creata"
// @Failure 400 {object} Response "Date invalide"
// @Router /cheltuieli-variabile/ [post]
func (h *CheltuialaVariabilaHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateCheltuialaVariabilaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Date invalide: "+err.Error())
		return
	}
	if !models.CategorieValida(req.Categorie) {
		BadRequest(c, "Categorie necunoscuta")
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

	ch := models.CheltuialaVariabila{
		UserID:    userID,
		Categorie: req.Categorie,
		Suma:      req.Suma,
		Moneda:    req.Moneda,
		Data:      data,
	}
	if err := database.DB.Create(&ch).Error; err != nil {
		InternalError(c, "Crearea cheltuielii a esuat: "+err.Error())
		return
	}
	SuccessWithMessage(c, "Cheltuiala creata", ch)
}

// Get returns one variable expense
// @Summary Detalii cheltuiala variabila
// @Tags cheltuieli-variabile
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID cheltuiala"
// @Success 200 {object} Response{data=models.CheltuialaVariabila} "Cheltuiala"
// @Failure 404 {object} Response "Cheltuiala nu exista"
// @Router /cheltuieli-variabile/{id}/ [get]
func (h *CheltuialaVariabilaHandler) Get(c *gin.Context) {
	userIDs, ok := connectedIDs(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID invalid")
		return
	}

	var ch models.CheltuialaVariabila
	if err := database.DB.Where("id = ? AND user_id IN ?", id, userIDs).First(&ch).Error; err != nil {
		NotFound(c, "Cheltuiala nu exista")
		return
	}
	Success(c, ch)
}

// Update edits one variable expense
// @Summary Actualizare cheltuiala variabila
// @Tags cheltuieli-variabile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID cheltuiala"
// @Param request body UpdateCheltuialaVariabilaRequest true "Campuri de actualizat"
// @Success 200 {object} Response{data=models.CheltuialaVariabila} "Cheltuiala actualizata"
// @Failure 404 {object} Response "Cheltuiala nu exista"
// @Router /cheltuieli-variabile/{id}/ [put]
func (h *CheltuialaVariabilaHandler) Update(c *gin.Context) {
	userIDs, ok := connectedIDs(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID invalid")
		return
	}

	var ch models.CheltuialaVariabila
	if err := database.DB.Where("id = ? AND user_id IN ?", id, userIDs).First(&ch).Error; err != nil {
		NotFound(c, "Cheltuiala nu exista")
		return
	}

	var req UpdateCheltuialaVariabilaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Date invalide: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Categorie != "" {
		if !models.CategorieValida(req.Categorie) {
			BadRequest(c, "Categorie necunoscuta")
			return
		}
		updates["categorie"] = req.Categorie
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
	if req.Data != "" {
		t, err := parseData(req.Data)
		if err != nil {
			BadRequest(c, "Data trebuie sa fie in formatul 2006-01-02")
			return
		}
		updates["data"] = t
	}

	if err := database.DB.Model(&ch).Updates(updates).Error; err != nil {
		InternalError(c, "Actualizarea a esuat: "+err.Error())
		return
	}
	database.DB.First(&ch, ch.ID)
	SuccessWithMessage(c, "Cheltuiala actualizata", ch)
}

// Delete removes one variable expense
// @Summary Stergere cheltuiala variabila
// @Tags cheltuieli-variabile
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID cheltuiala"
// @Success 200 {object} Response "Cheltuiala stearsa"
// @Failure 404 {object} Response "Cheltuiala nu exista"
// @Router /cheltuieli-variabile/{id}/ [delete]
func (h *CheltuialaVariabilaHandler) Delete(c *gin.Context) {
	userIDs, ok := connectedIDs(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID invalid")
		return
	}

	var ch models.CheltuialaVariabila
	if err := database.DB.Where("id = ? AND user_id IN ?", id, userIDs).First(&ch).Error; err != nil {
		NotFound(c, "Cheltuiala nu exista")
		return
	}
	if err := database.DB.Delete(&ch).Error; err != nil {
		InternalError(c, "Stergerea a esuat: "+err.Error())
		return
	}
	SuccessWithMessage(c, "Cheltuiala stearsa", nil)
}
