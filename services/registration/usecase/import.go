package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"musabaqa/domain"
)

// Import creates each row in order. Rows that are unreadable, invalid or
// duplicate are skipped and reported in file order; a store failure stops the import and returns what was
// created so far.
func (ru *registrationUseCase) Import(ctx context.Context, rows []domain.ImportRow) (*domain.ImportResult, error) {
	result := &domain.ImportResult{Duplicates: []string{}}

	for _, row := range rows {
		if row.Problem != "" {
			result.Duplicates = append(result.Duplicates, fmt.Sprintf("row %d: %s", row.Line, row.Problem))
			continue
		}

		_, err := ru.Create(ctx, &row.Registration)
		if err == nil {
			result.Created++
			continue
		}

		if errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrValidation) {
			result.Duplicates = append(result.Duplicates, fmt.Sprintf("row %d: %v", row.Line, err))
			continue
		}

		return result, fmt.Errorf("row %d: %w", row.Line, err)
	}

	ru.log.WithFields(logrus.Fields{
		"operation": "Import",
		"rows":      len(rows),
		"created":   result.Created,
		"skipped":   len(result.Duplicates),
	}).Info("registration import finished")
	return result, nil
}
