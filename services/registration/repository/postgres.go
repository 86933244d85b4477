package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"musabaqa/domain"
)

const pgUniqueViolation = "23505"

type postgresRepository struct {
	db *gorm.DB
}

func NewPostgresRepository(database *gorm.DB) domain.RegistrationRepo {
	return &postgresRepository{
		db: database,
	}
}

// AutoMigrate creates the registrations table with the unique indexes
// declared on domain.Registration.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Registration{}); err != nil {
		return fmt.Errorf("failed to migrate registrations table: %w", err)
	}
	return nil
}

func translatePgError(action string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		if rule, ok := domain.RuleByIndexName(pgErr.ConstraintName); ok {
			return domain.NewDuplicateError(rule)
		}
		return &domain.DuplicateError{}
	}
	return fmt.Errorf("%w: could not %s registration: %w", domain.ErrStoreUnavailable, action, err)
}

func (pr *postgresRepository) Create(ctx context.Context, reg *domain.Registration) error {
	if err := pr.db.WithContext(ctx).Create(reg).Error; err != nil {
		return translatePgError("insert", err)
	}
	return nil
}

func (pr *postgresRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	var reg domain.Registration
	err := pr.db.WithContext(ctx).Where("id = ?", id).First(&reg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%w: could not get registration: %w", domain.ErrStoreUnavailable, err)
	}
	return &reg, nil
}

func (pr *postgresRepository) Update(ctx context.Context, reg *domain.Registration) error {
	res := pr.db.WithContext(ctx).
		Model(&domain.Registration{}).
		Where("id = ?", reg.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(reg)
	if res.Error != nil {
		return translatePgError("update", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (pr *postgresRepository) Delete(ctx context.Context, id string) error {
	res := pr.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Registration{})
	if res.Error != nil {
		return fmt.Errorf("%w: could not delete registration: %w", domain.ErrStoreUnavailable, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (pr *postgresRepository) List(ctx context.Context) ([]domain.Registration, error) {
	regs := make([]domain.Registration, 0)
	if err := pr.db.WithContext(ctx).Order("created_at DESC").Find(&regs).Error; err != nil {
		return nil, fmt.Errorf("%w: could not list registrations: %w", domain.ErrStoreUnavailable, err)
	}
	return regs, nil
}

func (pr *postgresRepository) ExistsByRule(ctx context.Context, rule domain.UniqueRule, candidate *domain.Registration, excludeID string) (bool, error) {
	q := pr.db.WithContext(ctx).Model(&domain.Registration{})
	switch rule {
	case domain.RuleNaturalKey:
		q = q.Where("first_name = ? AND middle_name = ? AND surname = ? AND date_of_birth = ?",
			candidate.FirstName, candidate.MiddleName, candidate.Surname, candidate.DateOfBirth)
	case domain.RuleEmail:
		q = q.Where("email_address = ?", candidate.EmailAddress)
	case domain.RulePhone:
		q = q.Where("phone_number = ?", candidate.PhoneNumber)
	case domain.RuleAccountNumber:
		q = q.Where("bank_details_account_number = ?", candidate.BankDetails.AccountNumber)
	default:
		return false, fmt.Errorf("unknown uniqueness rule %d", rule)
	}
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("%w: could not check %s: %w", domain.ErrStoreUnavailable, rule, err)
	}
	return count > 0, nil
}

func (pr *postgresRepository) Ping(ctx context.Context) error {
	sqlDB, err := pr.db.DB()
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}
