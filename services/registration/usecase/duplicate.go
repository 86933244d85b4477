package usecase

import (
	"context"
	"fmt"

	"musabaqa/domain"
)

const duplicateMessage = "A record with these details already exists"

// duplicateChecker runs every UniqueRule against the store as an independent
// read-only lookup.
type duplicateChecker struct {
	repo domain.RegistrationRepo
}

func newDuplicateChecker(repo domain.RegistrationRepo) *duplicateChecker {
	return &duplicateChecker{repo: repo}
}

// Check reports which rules the candidate would violate. excludeID is the
// candidate's own identifier on update and empty on create. A failing lookup
// aborts the check; it is never read as "no duplicate".
func (dc *duplicateChecker) Check(ctx context.Context, candidate *domain.Registration, excludeID string) (*domain.DuplicateReport, error) {
	report := &domain.DuplicateReport{}

	for _, rule := range domain.UniqueRules {
		if !rule.Applicable(candidate) {
			continue
		}

		exists, err := dc.repo.ExistsByRule(ctx, rule, candidate, excludeID)
		if err != nil {
			return nil, fmt.Errorf("%w: duplicate check failed on %s: %w", domain.ErrStoreUnavailable, rule, err)
		}
		if exists {
			report.Reasons = append(report.Reasons, rule.Reason())
		}
	}

	if len(report.Reasons) > 0 {
		report.IsDuplicate = true
		report.Message = duplicateMessage
	}
	return report, nil
}
