package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"musabaqa/domain"
	"musabaqa/metrics"
)

type registrationUseCase struct {
	repo    domain.RegistrationRepo
	checker *duplicateChecker
	metrics *metrics.Metrics
	log     *logrus.Logger
	TimeOut time.Duration
	now     func() time.Time
}

func NewRegistrationUseCase(repo domain.RegistrationRepo, m *metrics.Metrics, log *logrus.Logger, to time.Duration) domain.RegistrationUseCase {
	return &registrationUseCase{
		repo:    repo,
		checker: newDuplicateChecker(repo),
		metrics: m,
		log:     log,
		TimeOut: to,
		now:     time.Now,
	}
}

func (ru *registrationUseCase) CheckDuplicate(ctx context.Context, candidate *domain.Registration) (*domain.DuplicateReport, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.TimeOut)
	defer cancel()
	defer ru.metrics.Observe("check_duplicate", time.Now())

	reg := *candidate
	reg.Normalize()

	report, err := ru.checker.Check(ctx, &reg, "")
	if err != nil {
		ru.log.WithError(err).WithField("operation", "CheckDuplicate").Error("duplicate check failed")
		return nil, err
	}
	return report, nil
}

func (ru *registrationUseCase) Create(ctx context.Context, candidate *domain.Registration) (*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.TimeOut)
	defer cancel()
	defer ru.metrics.Observe("create", time.Now())

	reg := *candidate
	reg.Normalize()
	if err := reg.Validate(); err != nil {
		ru.logFailure("Create", "", err)
		return nil, err
	}

	if err := ru.ensureUnique(ctx, "create", &reg, ""); err != nil {
		return nil, err
	}

	now := domain.Timestamp(ru.now())
	reg.ID = uuid.NewString()
	reg.CreatedAt = now
	reg.UpdatedAt = now

	if err := ru.repo.Create(ctx, &reg); err != nil {
		// a concurrent insert raced past the check; the unique index caught it
		if errors.Is(err, domain.ErrConflict) {
			ru.metrics.IncrementConflict("create")
		}
		ru.logFailure("Create", reg.ID, err)
		return nil, err
	}

	ru.metrics.IncrementCreated()
	ru.log.WithFields(logrus.Fields{"operation": "Create", "entry_id": reg.ID}).Info("registration created")
	return &reg, nil
}

func (ru *registrationUseCase) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.TimeOut)
	defer cancel()
	defer ru.metrics.Observe("get", time.Now())

	reg, err := ru.repo.GetByID(ctx, id)
	if err != nil {
		ru.logFailure("GetByID", id, err)
		return nil, err
	}
	return reg, nil
}

func (ru *registrationUseCase) Update(ctx context.Context, id string, patch *domain.RegistrationPatch) (*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.TimeOut)
	defer cancel()
	defer ru.metrics.Observe("update", time.Now())

	reg, err := ru.repo.GetByID(ctx, id)
	if err != nil {
		ru.logFailure("Update", id, err)
		return nil, err
	}

	patch.Apply(reg)
	reg.Normalize()
	if err := reg.Validate(); err != nil {
		ru.logFailure("Update", id, err)
		return nil, err
	}

	if err := ru.ensureUnique(ctx, "update", reg, id); err != nil {
		return nil, err
	}

	reg.UpdatedAt = domain.Timestamp(ru.now())
	if err := ru.repo.Update(ctx, reg); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			ru.metrics.IncrementConflict("update")
		}
		ru.logFailure("Update", id, err)
		return nil, err
	}

	ru.log.WithFields(logrus.Fields{"operation": "Update", "entry_id": id}).Info("registration updated")
	return reg, nil
}

func (ru *registrationUseCase) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, ru.TimeOut)
	defer cancel()
	defer ru.metrics.Observe("delete", time.Now())

	if err := ru.repo.Delete(ctx, id); err != nil {
		ru.logFailure("Delete", id, err)
		return err
	}

	ru.metrics.IncrementDeleted()
	ru.log.WithFields(logrus.Fields{"operation": "Delete", "entry_id": id}).Info("registration deleted")
	return nil
}

func (ru *registrationUseCase) List(ctx context.Context) (*domain.RegistrationList, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.TimeOut)
	defer cancel()
	defer ru.metrics.Observe("list", time.Now())

	entries, err := ru.repo.List(ctx)
	if err != nil {
		ru.logFailure("List", "", err)
		return nil, err
	}
	if entries == nil {
		entries = []domain.Registration{}
	}

	return &domain.RegistrationList{
		Entries:    entries,
		Statistics: domain.Summarize(entries),
	}, nil
}

func (ru *registrationUseCase) Healthy(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, ru.TimeOut)
	defer cancel()
	return ru.repo.Ping(ctx)
}

// ensureUnique runs the duplicate checker and turns a positive report into a
// *domain.DuplicateError.
func (ru *registrationUseCase) ensureUnique(ctx context.Context, operation string, reg *domain.Registration, excludeID string) error {
	report, err := ru.checker.Check(ctx, reg, excludeID)
	if err != nil {
		ru.logFailure(operation, excludeID, err)
		return err
	}
	if report.IsDuplicate {
		ru.metrics.IncrementConflict(operation)
		ru.log.WithFields(logrus.Fields{
			"operation": operation,
			"entry_id":  excludeID,
			"reasons":   report.Reasons,
		}).Warn("duplicate registration rejected")
		return &domain.DuplicateError{Reasons: report.Reasons}
	}
	return nil
}

// logFailure logs expected outcomes (not found, conflict, invalid input) as
// warnings and everything else as errors.
func (ru *registrationUseCase) logFailure(operation, id string, err error) {
	entry := ru.log.WithError(err).WithFields(logrus.Fields{"operation": operation, "entry_id": id})
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrValidation) {
		entry.Warn("registration operation rejected")
		return
	}
	entry.Error("registration operation failed")
}
