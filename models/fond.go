package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Fond is the legacy snapshot of total fund balances. Kept for existing data
// and the deletion export, but no routes serve it anymore.
type Fond struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	UserID     uint            `json:"user_id" gorm:"index;not null"`
	SumaEUR    decimal.Decimal `json:"suma_eur" gorm:"type:decimal(10,2);default:0"`
	SumaRON    decimal.Decimal `json:"suma_ron" gorm:"type:decimal(10,2);default:0"`
	Observatii string          `json:"observatii" gorm:"type:text"`
	Data       time.Time       `json:"data" gorm:"type:date;autoCreateTime"`
	CreatedAt  time.Time       `json:"-"`
	UpdatedAt  time.Time       `json:"-"`
	DeletedAt  gorm.DeletedAt  `json:"-" gorm:"index"`
	User       User            `json:"-" gorm:"foreignKey:UserID"`
}

func (Fond) TableName() string {
	return "fonduri"
}

// Fund movement types.
const (
	TipMiscareAdauga  = "adauga"
	TipMiscareRetrage = "retrage"
)

// Fund buckets a movement can target.
const (
	RubricaFondUrgenta    = "fond_urgenta"
	RubricaTrading212     = "trading212"
	RubricaXTB            = "xtb"
	RubricaRevolut        = "revolut"
	RubricaTradeville     = "tradeville"
	RubricaContEconomii   = "cont_economii"
	RubricaAlteInvestitii = "alte_investitii"
)

// Rubrici returns all fund buckets.
func Rubrici() []string {
	return []string{
		RubricaFondUrgenta,
		RubricaTrading212,
		RubricaXTB,
		RubricaRevolut,
		RubricaTradeville,
		RubricaContEconomii,
		RubricaAlteInvestitii,
	}
}

// RubricaValida reports whether rubrica is a known fund bucket.
func RubricaValida(rubrica string) bool {
	for _, r := range Rubrici() {
		if r == rubrica {
			return true
		}
	}
	return false
}

// MiscareFond is a signed deposit/withdrawal against a fund bucket.
// Stored amounts carry the sign of the movement: adauga positive,
// retrage negative. Normalized on every write, not by the database.
type MiscareFond struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	UserID     uint            `json:"user_id" gorm:"index;not null"`
	Tip        string          `json:"tip" gorm:"size:10;not null"`
	Rubrica    string          `json:"rubrica" gorm:"size:30;not null;default:alte_investitii"`
	SumaEUR    decimal.Decimal `json:"suma_eur" gorm:"type:decimal(10,2);default:0"`
	SumaRON    decimal.Decimal `json:"suma_ron" gorm:"type:decimal(10,2);default:0"`
	Observatii string          `json:"observatii" gorm:"type:text"`
	Data       time.Time       `json:"data" gorm:"type:date;autoCreateTime"`
	CreatedAt  time.Time       `json:"-"`
	UpdatedAt  time.Time       `json:"-"`
	DeletedAt  gorm.DeletedAt  `json:"-" gorm:"index"`
	User       User            `json:"-" gorm:"foreignKey:UserID"`
}

func (MiscareFond) TableName() string {
	return "miscari_fond"
}

// NormalizeazaSemn forces the stored amounts to match the movement type:
// retrage stores negatives, adauga stores positives.
func (m *MiscareFond) NormalizeazaSemn() {
	switch m.Tip {
	case TipMiscareRetrage:
		m.SumaEUR = m.SumaEUR.Abs().Neg()
		m.SumaRON = m.SumaRON.Abs().Neg()
	case TipMiscareAdauga:
		m.SumaEUR = m.SumaEUR.Abs()
		m.SumaRON = m.SumaRON.Abs()
	}
}
