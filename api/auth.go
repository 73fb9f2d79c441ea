package api

import (
	"time"

	"buget/config"
	"buget/database"
	"buget/middleware"
	"buget/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler serves registration, login and identity.
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// RegisterRequest is the account-creation payload.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50" example:"ana"`
	Email    string `json:"email" binding:"required,email" example:"ana@example.com"`
	Password string `json:"password" binding:"required,min=6,max=50" example:"parola123"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"ana"`
	Password string `json:"password" binding:"required" example:"parola123"`
}

// LoginResponse carries the issued token and the user.
type LoginResponse struct {
	Token    string      `json:"token"`
	UserInfo models.User `json:"user_info"`
}

// Register creates an account
// @Summary Inregistrare cont
// @Description Creeaza un cont nou. Username-ul si emailul trebuie sa fie unice, parola minim 6 caractere.
// @Tags autentificare
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Date cont"
// @Success 200 {object} Response{data=models.User} "Cont creat cu succes"
// @Failure 400 {object} Response "Date invalide sau cont existent"
// @Router /register/ [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Date invalide: "+err.Error())
		return
	}

	var existing models.User
	if err := database.DB.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		BadRequest(c, "Username-ul exista deja")
		return
	}
	if err := database.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		BadRequest(c, "Emailul exista deja")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, "Criptarea parolei a esuat")
		return
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
	}
	if err := database.DB.Create(&user).Error; err != nil {
		InternalError(c, "Crearea contului a esuat: "+err.Error())
		return
	}

	SuccessWithMessage(c, "Cont creat cu succes", user)
}

// Login issues a JWT
// @Summary Autentificare
// @Description Autentificare cu username si parola, returneaza un token JWT.
// @Tags autentificare
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Date autentificare"
// @Success 200 {object} Response{data=LoginResponse} "Autentificare reusita"
// @Failure 401 {object} Response "Username sau parola gresite"
// @Router /auth/login/ [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Date invalide: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.Where("username = ? OR email = ?", req.Username, req.Username).First(&user).Error; err != nil {
		Unauthorized(c, "Username sau parola gresite")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		Unauthorized(c, "Username sau parola gresite")
		return
	}

	expire := time.Duration(h.cfg.JWT.ExpireHours) * time.Hour
	token, err := middleware.GenerateToken(user.ID, user.Username, expire)
	if err != nil {
		InternalError(c, "Generarea tokenului a esuat")
		return
	}

	Success(c, LoginResponse{Token: token, UserInfo: user})
}

// MeResponse is the current-user identity document.
type MeResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

// Me returns the authenticated identity
// @Summary Utilizatorul curent
// @Description Returneaza identitatea utilizatorului autentificat si flagul de admin.
// @Tags autentificare
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=MeResponse} "Identitate"
// @Failure 401 {object} Response "Neautentificat"
// @Router /me/ [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "Utilizator inexistent")
		return
	}

	Success(c, MeResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		IsAdmin:  user.IsAdmin,
	})
}
