package salary

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_repo.go -destination=mock/salary_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, record *SalaryRecord) error
	FindByEmail(ctx context.Context, email string) (*SalaryRecord, error)
	FindAll(ctx context.Context) ([]SalaryRecord, error)
	UpdateSubmission(ctx context.Context, record *SalaryRecord) error
	UpdateCommission(ctx context.Context, record *SalaryRecord) error
	UpdateSalary(ctx context.Context, record *SalaryRecord) error
	Delete(ctx context.Context, record *SalaryRecord) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, record *SalaryRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*SalaryRecord, error) {
	var record SalaryRecord
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// FindAll returns every record in insertion order.
func (r *repository) FindAll(ctx context.Context) ([]SalaryRecord, error) {
	var records []SalaryRecord
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Updates below only touch their own columns so concurrent writers to other
// columns of the same row do not overwrite each other.

func (r *repository) UpdateSubmission(ctx context.Context, record *SalaryRecord) error {
	return r.updateColumns(ctx, record, "name", "salary_local_currency", "salary_euros")
}

func (r *repository) UpdateCommission(ctx context.Context, record *SalaryRecord) error {
	return r.updateColumns(ctx, record, "commission")
}

func (r *repository) UpdateSalary(ctx context.Context, record *SalaryRecord) error {
	return r.updateColumns(ctx, record, "salary_local_currency", "salary_euros")
}

func (r *repository) updateColumns(ctx context.Context, record *SalaryRecord, columns ...string) error {
	res := r.db.WithContext(ctx).
		Model(record).
		Select(columns).
		Updates(record)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, record *SalaryRecord) error {
	res := r.db.WithContext(ctx).Delete(record)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
