package salary

import "go-salary/internal/shared/money"

type SubmitSalaryRequest struct {
	Name                string        `json:"name" validate:"required,max=255"`
	Email               string        `json:"email" validate:"required,email,max=255"`
	SalaryLocalCurrency *money.Amount `json:"salary_local_currency" validate:"required,numeric,min=0,max=99999999.99"`
	SalaryEuros         *money.Amount `json:"salary_euros" validate:"required,numeric,min=0,max=99999999.99"`
}

type UpdateCommissionRequest struct {
	Email      string        `json:"email" validate:"required,email,max=255"`
	Commission *money.Amount `json:"commission" validate:"required,numeric,min=0,max=99999999.99"`
}

type UpdateSalaryRequest struct {
	Email               string        `json:"email" validate:"required,email,max=255"`
	SalaryLocalCurrency *money.Amount `json:"salary_local_currency" validate:"required,numeric,min=0,max=99999999.99"`
	SalaryEuros         *money.Amount `json:"salary_euros" validate:"required,numeric,min=0,max=99999999.99"`
}

type SubmitStatus string

const (
	SubmitStatusCreated SubmitStatus = "created"
	SubmitStatusUpdated SubmitStatus = "updated"
)

type SubmitResult struct {
	Status SubmitStatus
	Record SalaryRecordResponse
}

type SalaryRecordResponse struct {
	ID                  uint    `json:"id"`
	Name                string  `json:"name"`
	Email               string  `json:"email"`
	SalaryLocalCurrency *string `json:"salary_local_currency"`
	SalaryEuros         *string `json:"salary_euros"`
	Commission          string  `json:"commission"`
	DisplayedSalary     string  `json:"displayed_salary"`
	CreatedAt           string  `json:"created_at"`
	UpdatedAt           string  `json:"updated_at"`
}

type SubmitResponse struct {
	Status  SubmitStatus         `json:"status"`
	Message string               `json:"message"`
	User    SalaryRecordResponse `json:"user"`
}

type ListResponse struct {
	Salaries []SalaryRecordResponse `json:"salaries"`
}

type MutationResponse struct {
	Message string               `json:"message"`
	User    SalaryRecordResponse `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
