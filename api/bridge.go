package api

import (
	"strconv"

	"buget/database"
	"buget/middleware"
	"buget/models"

	"github.com/gin-gonic/gin"
)

// BridgeHandler serves the account-linking lifecycle.
type BridgeHandler struct{}

func NewBridgeHandler() *BridgeHandler {
	return &BridgeHandler{}
}

type SendBridgeRequest struct {
	UserID uint `json:"user_id" binding:"required" example:"2"`
}

// Send creates a pending bridge request toward another user
// @Summary Trimitere cerere de conectare
// @Description Creeaza o cerere de conectare in asteptare catre utilizatorul tinta. Doar destinatarul o poate accepta.
// @Tags bridge
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SendBridgeRequest true "Utilizator tinta"
// @Success 200 {object} Response{data=models.UserBridge} "Cerere trimisa"
// @Failure 400 {object} Response "Lipseste utilizatorul tinta"
// @Failure 404 {object} Response "Utilizatorul nu exista"
// @Router /bridge/send/ [post]
func (h *BridgeHandler) Send(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req SendBridgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Este necesar un utilizator tinta")
		return
	}

	var target models.User
	if err := database.DB.First(&target, req.UserID).Error; err != nil {
		NotFound(c, "Utilizatorul nu exista")
		return
	}

	bridge := models.UserBridge{FromUserID: userID, ToUserID: req.UserID}
	if err := database.DB.Create(&bridge).Error; err != nil {
		InternalError(c, "Crearea cererii a esuat: "+err.Error())
		return
	}
	SuccessWithMessage(c, "Cerere trimisa", bridge)
}

// BridgeRequestResponse is one pending request addressed to the caller.
type BridgeRequestResponse struct {
	ID       uint   `json:"id"`
	FromUser string `json:"from_user"`
}

// Requests lists pending bridge requests addressed to the caller
// @Summary Cereri de conectare in asteptare
// @Tags bridge
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]BridgeRequestResponse} "Cereri in asteptare"
// @Failure 401 {object} Response "Neautentificat"
// @Router /bridge/requests/ [get]
func (h *BridgeHandler) Requests(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var list []BridgeRequestResponse
	if err := database.DB.Model(&models.UserBridge{}).
		Select("user_bridges.id, users.username AS from_user").
		Joins("JOIN users ON users.id = user_bridges.from_user_id").
		Where("user_bridges.to_user_id = ? AND user_bridges.accepted = ?", userID, false).
		Scan(&list).Error; err != nil {
		InternalError(c, "Interogarea a esuat: "+err.Error())
		return
	}
	Success(c, list)
}

// Accept accepts a pending bridge request. Only the recipient can accept;
// anyone else gets a 404 because the lookup filters on to_user.
// @Summary Acceptare cerere de conectare
// @Tags bridge
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID cerere"
// @Success 200 {object} Response "Cerere acceptata"
// @Failure 404 {object} Response "Cererea nu exista"
// @Router /bridge/accept/{id}/ [post]
func (h *BridgeHandler) Accept(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID invalid")
		return
	}

	var bridge models.UserBridge
	if err := database.DB.Where("id = ? AND to_user_id = ?", id, userID).First(&bridge).Error; err != nil {
		NotFound(c, "Cererea nu exista")
		return
	}

	bridge.Accepted = true
	if err := database.DB.Save(&bridge).Error; err != nil {
		InternalError(c, "Acceptarea a esuat: "+err.Error())
		return
	}
	SuccessWithMessage(c, "Cerere acceptata", nil)
}

// SimpleUserResponse is a user entry for the bridge target picker.
type SimpleUserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// ListaUseri lists every other user, for picking a bridge target
// @Summary Lista utilizatorilor
// @Tags bridge
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]SimpleUserResponse} "Utilizatori"
// @Failure 401 {object} Response "Neautentificat"
// @Router /users/list/ [get]
func (h *BridgeHandler) ListaUseri(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var list []SimpleUserResponse
	if err := database.DB.Model(&models.User{}).
		Select("id, username").
		Where("id <> ?", userID).
		Scan(&list).Error; err != nil {
		InternalError(c, "Interogarea a esuat: "+err.Error())
		return
	}
	Success(c, list)
}
