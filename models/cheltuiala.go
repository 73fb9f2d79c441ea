package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CheltuialaFixa is a recurring expense (rent, utilities). Listed by the
// chosen effective date, newest first.
type CheltuialaFixa struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	UserID    uint            `json:"user_id" gorm:"index;not null"`
	Descriere string          `json:"descriere" gorm:"size:100;not null"`
	Suma      decimal.Decimal `json:"suma" gorm:"type:decimal(10,2);not null"`
	Moneda    string          `json:"moneda" gorm:"size:3;not null"`
	Data      time.Time       `json:"data" gorm:"type:date;not null"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `json:"-" gorm:"index"`
	User      User            `json:"-" gorm:"foreignKey:UserID"`
}

func (CheltuialaFixa) TableName() string {
	return "cheltuieli_fixe"
}

// Variable-expense categories.
const (
	CategorieAlimente         = "alimente"
	CategorieSanatate         = "sanatate"
	CategorieAuto             = "auto"
	CategorieCultura          = "cultura"
	CategorieShopping         = "shopping"
	CategorieNeprevazute      = "neprevazute"
	CategorieEconomii         = "economii"
	CategorieVacanta          = "vacanta"
	CategorieAnimalute        = "animalute"
	CategorieDivertisment     = "divertisment"
	CategorieInvestitii       = "investitii"
	CategorieVacantaCheltuita = "vacanta_cheltuita"
)

// CategoriiVariabile returns all variable-expense categories.
func CategoriiVariabile() []string {
	return []string{
		CategorieAlimente,
		CategorieSanatate,
		CategorieAuto,
		CategorieCultura,
		CategorieShopping,
		CategorieNeprevazute,
		CategorieEconomii,
		CategorieVacanta,
		CategorieAnimalute,
		CategorieDivertisment,
		CategorieInvestitii,
		CategorieVacantaCheltuita,
	}
}

// CategorieValida reports whether categorie is a known variable-expense category.
func CategorieValida(categorie string) bool {
	for _, c := range CategoriiVariabile() {
		if c == categorie {
			return true
		}
	}
	return false
}

// CheltuialaVariabila is a one-off expense in a fixed category set.
type CheltuialaVariabila struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	UserID    uint            `json:"user_id" gorm:"index;not null"`
	Categorie string          `json:"categorie" gorm:"size:20;not null"`
	Suma      decimal.Decimal `json:"suma" gorm:"type:decimal(10,2);not null"`
	Moneda    string          `json:"moneda" gorm:"size:3;not null"`
	Data      time.Time       `json:"data" gorm:"type:date;not null"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `json:"-" gorm:"index"`
	User      User            `json:"-" gorm:"foreignKey:UserID"`
}

func (CheltuialaVariabila) TableName() string {
	return "cheltuieli_variabile"
}
