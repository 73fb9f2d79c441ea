package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Vacation-saving entry types.
const (
	TipVacantaEconomii   = "economii"
	TipVacantaCheltuieli = "cheltuieli"
)

// EconomieVacanta is money put aside for (or taken out of) the vacation pot.
// The date is set at creation and never edited.
type EconomieVacanta struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	UserID    uint            `json:"user_id" gorm:"index;not null"`
	Tip       string          `json:"tip" gorm:"size:15;not null"`
	Suma      decimal.Decimal `json:"suma" gorm:"type:decimal(10,2);not null"`
	Moneda    string          `json:"moneda" gorm:"size:3;not null"`
	Data      time.Time       `json:"data" gorm:"type:date;autoCreateTime"`
	CreatedAt time.Time       `json:"-"`
	UpdatedAt time.Time       `json:"-"`
	DeletedAt gorm.DeletedAt  `json:"-" gorm:"index"`
	User      User            `json:"-" gorm:"foreignKey:UserID"`
}

func (EconomieVacanta) TableName() string {
	return "economii_vacanta"
}

// EconomieLunara holds the stored saving for one budget month, one row per
// (user, luna). Recomputing the month overwrites sold in place.
type EconomieLunara struct {
	ID     uint            `json:"-" gorm:"primaryKey"`
	UserID uint            `json:"-" gorm:"not null;uniqueIndex:idx_user_luna"`
	Luna   string          `json:"luna" gorm:"size:7;not null;uniqueIndex:idx_user_luna"` // ex: 2026-02
	Sold   decimal.Decimal `json:"sold" gorm:"type:decimal(10,2);default:0"`
	User   User            `json:"-" gorm:"foreignKey:UserID"`
}

func (EconomieLunara) TableName() string {
	return "economii_lunare"
}
