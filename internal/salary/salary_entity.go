package salary

import (
	"time"

	"go-salary/internal/domain"

	"github.com/shopspring/decimal"
)

// DefaultCommission is applied to every record created through submission.
var DefaultCommission = decimal.RequireFromString("500.00")

type SalaryRecord struct {
	ID                  uint                `gorm:"primaryKey"`
	Name                string              `gorm:"type:varchar(255);not null"`
	Email               string              `gorm:"type:varchar(255);uniqueIndex:users_email_key;not null"`
	Password            *string             `gorm:"type:varchar(255)"`
	Role                string              `gorm:"type:varchar(50);not null;default:USER"`
	SalaryLocalCurrency decimal.NullDecimal `gorm:"type:numeric(10,2)"`
	SalaryEuros         decimal.NullDecimal `gorm:"type:numeric(10,2)"`
	Commission          decimal.Decimal     `gorm:"type:numeric(10,2);not null;default:500.00"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (SalaryRecord) TableName() string {
	return "users"
}

// DisplayedSalary is salary_euros + commission; a missing euro salary counts as zero.
// It is derived on read and never stored.
func (r SalaryRecord) DisplayedSalary() decimal.Decimal {
	euros := decimal.Zero
	if r.SalaryEuros.Valid {
		euros = r.SalaryEuros.Decimal
	}
	return euros.Add(r.Commission)
}

func newSubmittedRecord(name, email string, local, euros decimal.Decimal) *SalaryRecord {
	return &SalaryRecord{
		Name:                name,
		Email:               email,
		Role:                domain.RoleUser,
		SalaryLocalCurrency: decimal.NewNullDecimal(local),
		SalaryEuros:         decimal.NewNullDecimal(euros),
		Commission:          DefaultCommission,
	}
}
