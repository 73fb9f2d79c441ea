package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Currency codes accepted on every money record.
const (
	MonedaEUR = "EUR"
	MonedaRON = "RON"
)

// MonedaValida reports whether moneda is a supported currency code.
func MonedaValida(moneda string) bool {
	return moneda == MonedaEUR || moneda == MonedaRON
}

// Venit is a single income entry. Listed newest-added first (created_at),
// not by the chosen income date.
type Venit struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	UserID    uint            `json:"user_id" gorm:"index;not null"`
	Suma      decimal.Decimal `json:"suma" gorm:"type:decimal(10,2);not null"`
	Moneda    string          `json:"moneda" gorm:"size:3;not null"`
	Data      time.Time       `json:"data" gorm:"type:date;not null"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `json:"-" gorm:"index"`
	User      User            `json:"-" gorm:"foreignKey:UserID"`
}

func (Venit) TableName() string {
	return "venituri"
}
