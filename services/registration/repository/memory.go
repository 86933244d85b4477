package repository

import (
	"context"
	"sort"
	"sync"

	"musabaqa/domain"
)

type memoryRow struct {
	seq int64
	reg domain.Registration
}

// memoryRepository keeps registrations in a map and enforces the same unique
// indexes as the real stores. Used for local runs (memory://) and tests.
type memoryRepository struct {
	mu   sync.RWMutex
	rows map[string]memoryRow
	seq  int64
}

func NewMemoryRepository() domain.RegistrationRepo {
	return &memoryRepository{
		rows: make(map[string]memoryRow),
	}
}

// violated returns the rules reg would break against stored rows other than
// excludeID. Caller holds the lock.
func (mr *memoryRepository) violated(reg *domain.Registration, excludeID string) []domain.UniqueRule {
	var rules []domain.UniqueRule
	for _, rule := range domain.UniqueRules {
		for id, row := range mr.rows {
			if id == excludeID {
				continue
			}
			if rule.Matches(&row.reg, reg) {
				rules = append(rules, rule)
				break
			}
		}
	}
	return rules
}

func (mr *memoryRepository) Create(ctx context.Context, reg *domain.Registration) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	if _, ok := mr.rows[reg.ID]; ok {
		return &domain.DuplicateError{Reasons: []string{"A record with this identifier already exists"}}
	}
	if rules := mr.violated(reg, ""); len(rules) > 0 {
		return domain.NewDuplicateError(rules...)
	}

	mr.seq++
	mr.rows[reg.ID] = memoryRow{seq: mr.seq, reg: *reg}
	return nil
}

func (mr *memoryRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	row, ok := mr.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	reg := row.reg
	return &reg, nil
}

func (mr *memoryRepository) Update(ctx context.Context, reg *domain.Registration) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	row, ok := mr.rows[reg.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if rules := mr.violated(reg, reg.ID); len(rules) > 0 {
		return domain.NewDuplicateError(rules...)
	}

	row.reg = *reg
	mr.rows[reg.ID] = row
	return nil
}

func (mr *memoryRepository) Delete(ctx context.Context, id string) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	if _, ok := mr.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(mr.rows, id)
	return nil
}

func (mr *memoryRepository) List(ctx context.Context) ([]domain.Registration, error) {
	mr.mu.RLock()
	rows := make([]memoryRow, 0, len(mr.rows))
	for _, row := range mr.rows {
		rows = append(rows, row)
	}
	mr.mu.RUnlock()

	// newest first; insertion order breaks ties on equal timestamps
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].reg.CreatedAt.Equal(rows[j].reg.CreatedAt) {
			return rows[i].reg.CreatedAt.After(rows[j].reg.CreatedAt)
		}
		return rows[i].seq > rows[j].seq
	})

	result := make([]domain.Registration, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.reg)
	}
	return result, nil
}

func (mr *memoryRepository) ExistsByRule(ctx context.Context, rule domain.UniqueRule, candidate *domain.Registration, excludeID string) (bool, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	for id, row := range mr.rows {
		if id == excludeID {
			continue
		}
		if rule.Matches(&row.reg, candidate) {
			return true, nil
		}
	}
	return false, nil
}

func (mr *memoryRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}
