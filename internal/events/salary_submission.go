package events

import (
	"time"

	"go-salary/internal/shared/money"
)

const SalarySubmissionRequestedTopic = "salary.submission.requested.v1"

// SalarySubmissionRequestedEvent carries a self-service submission produced
// by another system (bulk import, HR tooling).
type SalarySubmissionRequestedEvent struct {
	EventType           string        `json:"event_type"`
	Name                string        `json:"name"`
	Email               string        `json:"email"`
	SalaryLocalCurrency *money.Amount `json:"salary_local_currency"`
	SalaryEuros         *money.Amount `json:"salary_euros"`
	OccurredAt          time.Time     `json:"occurred_at"`
}
