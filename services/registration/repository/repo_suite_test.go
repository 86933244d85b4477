package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"musabaqa/domain"
)

// RepoSuite runs the same behaviour checks against every store. Runners
// provide NewRepo, which must hand back an empty store.
type RepoSuite struct {
	suite.Suite
	NewRepo func() domain.RegistrationRepo

	ctx  context.Context
	repo domain.RegistrationRepo
}

func (s *RepoSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = s.NewRepo()
}

func newRecord(first, email, phone, account string, createdAt time.Time) *domain.Registration {
	return &domain.Registration{
		ID:             uuid.NewString(),
		FirstName:      first,
		MiddleName:     "Bello",
		Surname:        "Usman",
		Gender:         "Female",
		MaritalStatus:  "Single",
		DateOfBirth:    "2000-01-01",
		State:          "Kano",
		LGA:            "Nassarawa",
		Ward:           "Gama",
		EmailAddress:   email,
		PhoneNumber:    phone,
		YearOfMusabaqa: 2020,
		HomeAddress:    "12 Zoo Road",
		BankDetails: domain.BankDetails{
			BankName:      "First Bank",
			AccountName:   first + " Usman",
			AccountNumber: account,
		},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func (s *RepoSuite) TestCreateAndGet() {
	now := domain.Timestamp(time.Now())
	reg := newRecord("Aisha", "aisha@example.com", "0801", "3001", now)

	s.Require().NoError(s.repo.Create(s.ctx, reg))

	got, err := s.repo.GetByID(s.ctx, reg.ID)
	s.Require().NoError(err)
	s.Equal(reg.ID, got.ID)
	s.Equal("aisha@example.com", got.EmailAddress)
	s.Equal("3001", got.BankDetails.AccountNumber)
	s.True(now.Equal(got.CreatedAt))
	s.True(now.Equal(got.UpdatedAt))
}

func (s *RepoSuite) TestGetMissing() {
	_, err := s.repo.GetByID(s.ctx, uuid.NewString())
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *RepoSuite) TestCreateRejectsEveryUniqueRule() {
	now := time.Now().UTC()
	s.Require().NoError(s.repo.Create(s.ctx, newRecord("Aisha", "aisha@example.com", "0801", "3001", now)))

	tests := []struct {
		name string
		reg  *domain.Registration
	}{
		{"same person", newRecord("Aisha", "other@example.com", "0802", "3002", now)},
		{"same email", newRecord("Fatima", "aisha@example.com", "0803", "3003", now)},
		{"same phone", newRecord("Zainab", "zainab@example.com", "0801", "3004", now)},
		{"same account number", newRecord("Maryam", "maryam@example.com", "0805", "3001", now)},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			err := s.repo.Create(s.ctx, tt.reg)
			s.ErrorIs(err, domain.ErrConflict)
		})
	}

	entries, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Len(entries, 1)
}

func (s *RepoSuite) TestUpdate() {
	now := time.Now().UTC()
	first := newRecord("Aisha", "aisha@example.com", "0801", "3001", now)
	second := newRecord("Fatima", "fatima@example.com", "0802", "3002", now)
	s.Require().NoError(s.repo.Create(s.ctx, first))
	s.Require().NoError(s.repo.Create(s.ctx, second))

	s.Run("keeps its own unique values", func() {
		first.Ward = "Dala"
		s.Require().NoError(s.repo.Update(s.ctx, first))

		got, err := s.repo.GetByID(s.ctx, first.ID)
		s.Require().NoError(err)
		s.Equal("Dala", got.Ward)
		s.Equal("aisha@example.com", got.EmailAddress)
	})

	s.Run("cannot take another record's email", func() {
		clash := *second
		clash.EmailAddress = "aisha@example.com"
		s.ErrorIs(s.repo.Update(s.ctx, &clash), domain.ErrConflict)
	})

	s.Run("missing id", func() {
		ghost := newRecord("Ghost", "ghost@example.com", "0809", "3009", now)
		s.ErrorIs(s.repo.Update(s.ctx, ghost), domain.ErrNotFound)
	})
}

func (s *RepoSuite) TestDelete() {
	reg := newRecord("Aisha", "aisha@example.com", "0801", "3001", time.Now().UTC())
	s.Require().NoError(s.repo.Create(s.ctx, reg))

	s.Require().NoError(s.repo.Delete(s.ctx, reg.ID))
	_, err := s.repo.GetByID(s.ctx, reg.ID)
	s.ErrorIs(err, domain.ErrNotFound)

	s.ErrorIs(s.repo.Delete(s.ctx, reg.ID), domain.ErrNotFound)

	// freed unique values can be registered again
	again := newRecord("Aisha", "aisha@example.com", "0801", "3001", time.Now().UTC())
	s.NoError(s.repo.Create(s.ctx, again))
}

func (s *RepoSuite) TestListNewestFirst() {
	base := time.Now().UTC().Truncate(time.Second)
	older := newRecord("Aisha", "aisha@example.com", "0801", "3001", base.Add(-time.Hour))
	newest := newRecord("Fatima", "fatima@example.com", "0802", "3002", base)
	middle := newRecord("Zainab", "zainab@example.com", "0803", "3003", base.Add(-time.Minute))

	for _, reg := range []*domain.Registration{older, newest, middle} {
		s.Require().NoError(s.repo.Create(s.ctx, reg))
	}

	entries, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(entries, 3)
	s.Equal(newest.ID, entries[0].ID)
	s.Equal(middle.ID, entries[1].ID)
	s.Equal(older.ID, entries[2].ID)
}

func (s *RepoSuite) TestListEmpty() {
	entries, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *RepoSuite) TestExistsByRule() {
	stored := newRecord("Aisha", "aisha@example.com", "0801", "3001", time.Now().UTC())
	s.Require().NoError(s.repo.Create(s.ctx, stored))

	candidate := newRecord("Fatima", "fatima@example.com", "0802", "3002", time.Now().UTC())
	for _, rule := range domain.UniqueRules {
		exists, err := s.repo.ExistsByRule(s.ctx, rule, candidate, "")
		s.Require().NoError(err)
		s.False(exists, rule.String())
	}

	candidate.PhoneNumber = "0801"
	exists, err := s.repo.ExistsByRule(s.ctx, domain.RulePhone, candidate, "")
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.repo.ExistsByRule(s.ctx, domain.RulePhone, candidate, stored.ID)
	s.Require().NoError(err)
	s.False(exists, "the excluded record must not count")

	same := *stored
	same.ID = ""
	exists, err = s.repo.ExistsByRule(s.ctx, domain.RuleNaturalKey, &same, "")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *RepoSuite) TestPing() {
	s.NoError(s.repo.Ping(s.ctx))
}
