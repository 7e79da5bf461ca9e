package salary

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-salary/internal/domain"
	salaryerrors "go-salary/internal/salary/errors"
	"go-salary/internal/shared/apperror"
	"go-salary/internal/shared/contextutil"
	"go-salary/internal/shared/money"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_service.go -destination=mock/salary_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, req SubmitSalaryRequest) (SubmitResult, error)
	List(ctx context.Context, caller domain.Identity) ([]SalaryRecordResponse, error)
	UpdateCommission(ctx context.Context, caller domain.Identity, req UpdateCommissionRequest) (SalaryRecordResponse, error)
	UpdateSalary(ctx context.Context, caller domain.Identity, req UpdateSalaryRequest) (SalaryRecordResponse, error)
	Delete(ctx context.Context, caller domain.Identity, email string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("salary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

// Submit is the unauthenticated upsert keyed by email. An existing record gets
// its name and salaries replaced; commission is never touched here.
func (s *service) Submit(ctx context.Context, req SubmitSalaryRequest) (SubmitResult, error) {
	log := s.log(ctx)
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	log.Debug("submit salary requested", zap.String("email", req.Email))

	if err := apperror.ValidateStruct(req); err != nil {
		return SubmitResult{}, err
	}

	local := req.SalaryLocalCurrency.Decimal()
	euros := req.SalaryEuros.Decimal()

	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("find salary record failed", zap.String("email", req.Email), zap.Error(err))
		return SubmitResult{}, mapRepositoryError(err)
	}

	if existing != nil {
		existing.Name = req.Name
		existing.SalaryLocalCurrency = decimal.NewNullDecimal(local)
		existing.SalaryEuros = decimal.NewNullDecimal(euros)

		err := s.repo.UpdateSubmission(ctx, existing)
		switch {
		case err == nil:
			log.Info("salary submission updated", zap.Uint("id", existing.ID))
			return SubmitResult{Status: SubmitStatusUpdated, Record: mapToResponse(*existing)}, nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			// Row dihapus admin di antara lookup dan update, buat ulang
			log.Warn("submitted record vanished before update, creating", zap.Uint("id", existing.ID))
		default:
			log.Error("update submitted salary failed", zap.Uint("id", existing.ID), zap.Error(err))
			return SubmitResult{}, mapRepositoryError(err)
		}
	}

	record := newSubmittedRecord(req.Name, req.Email, local, euros)
	if err := s.repo.Create(ctx, record); err != nil {
		// Lost the race against another submission for the same email.
		if isUniqueEmailViolation(err) {
			log.Warn("salary submission conflicted", zap.String("email", req.Email))
		} else {
			log.Error("create salary record failed", zap.String("email", req.Email), zap.Error(err))
		}
		return SubmitResult{}, mapRepositoryError(err)
	}

	log.Info("salary submission created", zap.Uint("id", record.ID))
	return SubmitResult{Status: SubmitStatusCreated, Record: mapToResponse(*record)}, nil
}

func (s *service) List(ctx context.Context, caller domain.Identity) ([]SalaryRecordResponse, error) {
	if err := authorize(caller); err != nil {
		return nil, err
	}

	records, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log(ctx).Error("list salary records failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(records), nil
}

func (s *service) UpdateCommission(
	ctx context.Context,
	caller domain.Identity,
	req UpdateCommissionRequest,
) (SalaryRecordResponse, error) {
	if err := authorize(caller); err != nil {
		return SalaryRecordResponse{}, err
	}
	req.Email = strings.TrimSpace(req.Email)
	if err := apperror.ValidateStruct(req); err != nil {
		return SalaryRecordResponse{}, err
	}

	record, err := s.findExisting(ctx, req.Email)
	if err != nil {
		return SalaryRecordResponse{}, err
	}

	record.Commission = req.Commission.Decimal()
	if err := s.repo.UpdateCommission(ctx, record); err != nil {
		return SalaryRecordResponse{}, s.mutationError(ctx, "update commission", record, err)
	}

	s.log(ctx).Info("commission updated",
		zap.Uint("id", record.ID),
		zap.Uint("by", caller.UserID),
		zap.String("commission", money.Format(record.Commission)),
	)
	return mapToResponse(*record), nil
}

func (s *service) UpdateSalary(
	ctx context.Context,
	caller domain.Identity,
	req UpdateSalaryRequest,
) (SalaryRecordResponse, error) {
	if err := authorize(caller); err != nil {
		return SalaryRecordResponse{}, err
	}
	req.Email = strings.TrimSpace(req.Email)
	if err := apperror.ValidateStruct(req); err != nil {
		return SalaryRecordResponse{}, err
	}

	record, err := s.findExisting(ctx, req.Email)
	if err != nil {
		return SalaryRecordResponse{}, err
	}

	record.SalaryLocalCurrency = decimal.NewNullDecimal(req.SalaryLocalCurrency.Decimal())
	record.SalaryEuros = decimal.NewNullDecimal(req.SalaryEuros.Decimal())
	if err := s.repo.UpdateSalary(ctx, record); err != nil {
		return SalaryRecordResponse{}, s.mutationError(ctx, "update salary", record, err)
	}

	s.log(ctx).Info("salary overwritten by admin", zap.Uint("id", record.ID), zap.Uint("by", caller.UserID))
	return mapToResponse(*record), nil
}

func (s *service) Delete(ctx context.Context, caller domain.Identity, email string) error {
	if err := authorize(caller); err != nil {
		return err
	}

	record, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return salaryerrors.ErrUserNotFound
		}
		s.log(ctx).Error("find salary record failed", zap.String("email", email), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, record); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return salaryerrors.ErrUserNotFound
		}
		s.log(ctx).Error("delete salary record failed", zap.Uint("id", record.ID), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.log(ctx).Info("salary record deleted", zap.Uint("id", record.ID), zap.Uint("by", caller.UserID))
	return nil
}

// authorize is evaluated before any lookup or validation.
func authorize(caller domain.Identity) error {
	if !domain.IsAdministrator(caller) {
		return apperror.ErrForbidden
	}
	return nil
}

// findExisting resolves the target of an admin mutation; an unknown email
// is reported against the email field.
func (s *service) findExisting(ctx context.Context, email string) (*SalaryRecord, error) {
	record, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, salaryerrors.ErrEmailNotFound
		}
		s.log(ctx).Error("find salary record failed", zap.String("email", email), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return record, nil
}

// mutationError covers a row deleted between lookup and update.
func (s *service) mutationError(ctx context.Context, op string, record *SalaryRecord, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return salaryerrors.ErrEmailNotFound
	}
	s.log(ctx).Error(op+" failed", zap.Uint("id", record.ID), zap.Error(err))
	return mapRepositoryError(err)
}

func mapToResponse(record SalaryRecord) SalaryRecordResponse {
	return SalaryRecordResponse{
		ID:                  record.ID,
		Name:                record.Name,
		Email:               record.Email,
		SalaryLocalCurrency: money.FormatNull(record.SalaryLocalCurrency),
		SalaryEuros:         money.FormatNull(record.SalaryEuros),
		Commission:          money.Format(record.Commission),
		DisplayedSalary:     money.Format(record.DisplayedSalary()),
		CreatedAt:           formatTime(record.CreatedAt),
		UpdatedAt:           formatTime(record.UpdatedAt),
	}
}

func mapToListResponse(records []SalaryRecord) []SalaryRecordResponse {
	res := make([]SalaryRecordResponse, len(records))
	for i, record := range records {
		res[i] = mapToResponse(record)
	}
	return res
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
