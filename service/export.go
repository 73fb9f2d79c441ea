package service

import (
	"encoding/json"

	"buget/database"
	"buget/models"
)

// UserExport is the JSON document mailed to a user before their account is
// deleted: identity plus every financial record with raw field values.
type UserExport struct {
	Username            string                       `json:"username"`
	Email               string                       `json:"email"`
	Venituri            []models.Venit               `json:"venituri"`
	CheltuieliFixe      []models.CheltuialaFixa      `json:"cheltuieli_fixe"`
	CheltuieliVariabile []models.CheltuialaVariabila `json:"cheltuieli_variabile"`
	EconomiiVacanta     []models.EconomieVacanta     `json:"economii_vacanta"`
	EconomiiLunare      []models.EconomieLunara      `json:"economii_lunare"`
	Fonduri             []models.Fond                `json:"fonduri"`
	MiscariFond         []models.MiscareFond         `json:"miscari_fond"`
}

// BuildUserExport collects all records owned by the user.
func BuildUserExport(user *models.User) (*UserExport, error) {
	export := &UserExport{
		Username: user.Username,
		Email:    user.Email,
	}

	if err := database.DB.Where("user_id = ?", user.ID).Find(&export.Venituri).Error; err != nil {
		return nil, err
	}
	if err := database.DB.Where("user_id = ?", user.ID).Find(&export.CheltuieliFixe).Error; err != nil {
		return nil, err
	}
	if err := database.DB.Where("user_id = ?", user.ID).Find(&export.CheltuieliVariabile).Error; err != nil {
		return nil, err
	}
	if err := database.DB.Where("user_id = ?", user.ID).Find(&export.EconomiiVacanta).Error; err != nil {
		return nil, err
	}
	if err := database.DB.Where("user_id = ?", user.ID).Find(&export.EconomiiLunare).Error; err != nil {
		return nil, err
	}
	if err := database.DB.Where("user_id = ?", user.ID).Find(&export.Fonduri).Error; err != nil {
		return nil, err
	}
	if err := database.DB.Where("user_id = ?", user.ID).Find(&export.MiscariFond).Error; err != nil {
		return nil, err
	}

	return export, nil
}

// JSON renders the export document indented, ready to attach to an email.
func (e *UserExport) JSON() ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}
