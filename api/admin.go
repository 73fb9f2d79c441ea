package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"buget/config"
	"buget/database"
	"buget/middleware"
	"buget/models"
	"buget/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// AdminHandler serves user management and global statistics.
type AdminHandler struct {
	emailService *service.EmailService
}

// NewAdminHandler creates the admin handler.
func NewAdminHandler(cfg *config.Config) *AdminHandler {
	return &AdminHandler{
		emailService: service.NewEmailService(&cfg.Email),
	}
}

// AdminUserResponse is one row of the admin user list.
type AdminUserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// ListaUtilizatori lists all accounts, newest first
// @Summary Lista conturilor
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]AdminUserResponse} "Conturi"
// @Failure 403 {object} Response "Acces interzis"
// @Router /admin/users/ [get]
func (h *AdminHandler) ListaUtilizatori(c *gin.Context) {
	var users []models.User
	if err := database.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		InternalError(c, "Interogarea a esuat: "+err.Error())
		return
	}

	list := make([]AdminUserResponse, 0, len(users))
	for _, u := range users {
		list = append(list, AdminUserResponse{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			IsAdmin:   u.IsAdmin,
			CreatedAt: u.CreatedAt,
		})
	}
	Success(c, list)
}

type AdminUpdateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  *bool  `json:"is_admin"`
}

// UpdateUser edits an account
// @Summary Actualizare cont
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID cont"
// @Param request body AdminUpdateUserRequest true "Campuri de actualizat"
// @Success 200 {object} Response "Cont actualizat"
// @Failure 404 {object} Response "Contul nu exista"
// @Router /admin/users/{id}/ [put]
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID invalid")
		return
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		NotFound(c, "Contul nu exista")
		return
	}

	var req AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Date invalide: "+err.Error())
		return
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}

	if err := database.DB.Save(&user).Error; err != nil {
		InternalError(c, "Actualizarea a esuat: "+err.Error())
		return
	}
	SuccessWithMessage(c, "Cont actualizat", nil)
}

// AdminStatsResponse aggregates totals over every account.
type AdminStatsResponse struct {
	TotalVenit      decimal.Decimal `json:"total_venit"`
	TotalCheltuieli decimal.Decimal `json:"total_cheltuieli"`
	Economii        decimal.Decimal `json:"economii"`
}

// Stats returns all-time totals across all users
// @Summary Statistici globale
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=AdminStatsResponse} "Statistici"
// @Failure 403 {object} Response "Acces interzis"
// @Router /admin/stats/ [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	totalVenit, err := sumaColoana(database.DB.Model(&models.Venit{}), "suma")
	if err != nil {
		InternalError(c, "Interogarea a esuat: "+err.Error())
		return
	}
	fixe, err := sumaColoana(database.DB.Model(&models.CheltuialaFixa{}), "suma")
	if err != nil {
		InternalError(c, "Interogarea a esuat: "+err.Error())
		return
	}
	variabile, err := sumaColoana(database.DB.Model(&models.CheltuialaVariabila{}), "suma")
	if err != nil {
		InternalError(c, "Interogarea a esuat: "+err.Error())
		return
	}

	cheltuieli := fixe.Add(variabile)
	Success(c, AdminStatsResponse{
		TotalVenit:      totalVenit,
		TotalCheltuieli: cheltuieli,
		Economii:        totalVenit.Sub(cheltuieli),
	})
}

// DeleteUser removes an account and every record it owns. With
// send_copy=true the user first receives their data as a JSON attachment.
// @Summary Stergere cont
// @Description Sterge contul si toate inregistrarile lui. Cu send_copy=true utilizatorul primeste intai o copie a datelor pe email.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID cont"
// @Param send_copy query bool false "Trimite o copie a datelor pe email inainte de stergere"
// @Success 200 {object} Response "Cont sters"
// @Failure 400 {object} Response "Nu te poti sterge singur"
// @Failure 404 {object} Response "Contul nu exista"
// @Failure 500 {object} Response "Stergerea a esuat"
// @Router /admin/users/{id}/delete/ [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	currentID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID invalid")
		return
	}

	if uint(id) == currentID {
		BadRequest(c, "Nu te poti sterge singur")
		return
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		NotFound(c, "Contul nu exista")
		return
	}

	if c.Query("send_copy") == "true" && user.Email != "" {
		export, err := service.BuildUserExport(&user)
		if err != nil {
			InternalError(c, "Stergere esuata: "+err.Error())
			return
		}
		exportJSON, err := export.JSON()
		if err != nil {
			InternalError(c, "Stergere esuata: "+err.Error())
			return
		}
		if err := h.emailService.SendDataExport(user.Email, user.Username, exportJSON); err != nil {
			InternalError(c, "Stergere esuata: "+err.Error())
			return
		}
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.Venit{},
			&models.CheltuialaFixa{},
			&models.CheltuialaVariabila{},
			&models.EconomieVacanta{},
			&models.EconomieLunara{},
			&models.Fond{},
			&models.MiscareFond{},
		} {
			if err := tx.Unscoped().Where("user_id = ?", user.ID).Delete(model).Error; err != nil {
				return err
			}
		}
		if err := tx.Unscoped().
			Where("from_user_id = ? OR to_user_id = ?", user.ID, user.ID).
			Delete(&models.UserBridge{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&user).Error
	})
	if err != nil {
		InternalError(c, "Stergere esuata: "+err.Error())
		return
	}

	SuccessWithMessage(c, "Cont sters", nil)
}

// ExportExcel downloads every financial record as an Excel workbook
// @Summary Export Excel
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file "Fisier Excel"
// @Failure 403 {object} Response "Acces interzis"
// @Router /admin/export/excel/ [get]
func (h *AdminHandler) ExportExcel(c *gin.Context) {
	f := excelize.NewFile()
	defer f.Close()

	usernames := map[uint]string{}
	var users []models.User
	if err := database.DB.Find(&users).Error; err != nil {
		InternalError(c, "Interogarea a esuat: "+err.Error())
		return
	}
	for _, u := range users {
		usernames[u.ID] = u.Username
	}

	// Venituri
	sheet := "Venituri"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &[]interface{}{"Utilizator", "Suma", "Moneda", "Data"})
	var venituri []models.Venit
	if err := database.DB.Order("data ASC").Find(&venituri).Error; err != nil {
		InternalError(c, "Interogarea a esuat: "+err.Error())
		return
	}
	for i, v := range venituri {
		cell := fmt.Sprintf("A%d", i+2)
		f.SetSheetRow(sheet, cell, &[]interface{}{
			usernames[v.UserID], v.Suma.InexactFloat64(), v.Moneda, v.Data.Format(dataFormat),
		})
	}

	// Cheltuieli fixe
	sheet = "Cheltuieli fixe"
	f.NewSheet(sheet)
	f.SetSheetRow(sheet, "A1", &[]interface{}{"Utilizator", "Descriere", "Suma", "Moneda", "Data"})
	var fixe []models.CheltuialaFixa
	if err := database.DB.Order("data ASC").Find(&fixe).Error; err != nil {
		InternalError(c, "Interogarea a esuat: "+err.Error())
		return
	}
	for i, ch := range fixe {
		cell := fmt.Sprintf("A%d", i+2)
		f.SetSheetRow(sheet, cell, &[]interface{}{
			usernames[ch.UserID], ch.Descriere, ch.Suma.InexactFloat64(), ch.Moneda, ch.Data.Format(dataFormat),
		})
	}

	// Cheltuieli variabile
	sheet = "Cheltuieli variabile"
	f.NewSheet(sheet)
	f.SetSheetRow(sheet, "A1", &[]interface{}{"Utilizator", "Categorie", "Suma", "Moneda", "Data"})
	var variabile []models.CheltuialaVariabila
	if err := database.DB.Order("data ASC").Find(&variabile).Error; err != nil {
		InternalError(c, "Interogarea a esuat: "+err.Error())
		return
	}
	for i, ch := range variabile {
		cell := fmt.Sprintf("A%d", i+2)
		f.SetSheetRow(sheet, cell, &[]interface{}{
			usernames[ch.UserID], ch.Categorie, ch.Suma.InexactFloat64(), ch.Moneda, ch.Data.Format(dataFormat),
		})
	}

	// Miscari de fond
	sheet = "Miscari fond"
	f.NewSheet(sheet)
	f.SetSheetRow(sheet, "A1", &[]interface{}{"Utilizator", "Tip", "Rubrica", "Suma EUR", "Suma RON", "Data"})
	var miscari []models.MiscareFond
	if err := database.DB.Order("data ASC").Find(&miscari).Error; err != nil {
		InternalError(c, "Interogarea a esuat: "+err.Error())
		return
	}
	for i, m := range miscari {
		cell := fmt.Sprintf("A%d", i+2)
		f.SetSheetRow(sheet, cell, &[]interface{}{
			usernames[m.UserID], m.Tip, m.Rubrica,
			m.SumaEUR.InexactFloat64(), m.SumaRON.InexactFloat64(), m.Data.Format(dataFormat),
		})
	}

	filename := fmt.Sprintf("buget_%s.xlsx", time.Now().Format(dataFormat))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "Generarea fisierului a esuat: "+err.Error())
		return
	}
	c.Status(http.StatusOK)
}
