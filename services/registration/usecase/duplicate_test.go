package usecase

//go:generate mockgen -source=../../../domain/registration.go -destination=../mocks/mock_registration.go -package=mocks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"musabaqa/domain"
	"musabaqa/metrics"
	"musabaqa/services/registration/mocks"
)

var errStoreDown = errors.New("connection refused")

func TestDuplicateCheckerSkipsRulesWithoutFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRegistrationRepo(ctrl)

	partial := &domain.Registration{PhoneNumber: "111"}
	repo.EXPECT().ExistsByRule(gomock.Any(), domain.RulePhone, partial, "").Return(true, nil)

	report, err := newDuplicateChecker(repo).Check(context.Background(), partial, "")
	require.NoError(t, err)
	assert.True(t, report.IsDuplicate)
	assert.Equal(t, []string{domain.RulePhone.Reason()}, report.Reasons)
}

func TestDuplicateCheckerPassesExcludeID(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRegistrationRepo(ctrl)

	c := candidate()
	for _, rule := range domain.UniqueRules {
		repo.EXPECT().ExistsByRule(gomock.Any(), rule, &c, "self").Return(false, nil)
	}

	report, err := newDuplicateChecker(repo).Check(context.Background(), &c, "self")
	require.NoError(t, err)
	assert.False(t, report.IsDuplicate)
	assert.Empty(t, report.Message)
}

func TestDuplicateCheckerStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRegistrationRepo(ctrl)

	c := candidate()
	repo.EXPECT().ExistsByRule(gomock.Any(), domain.RuleNaturalKey, &c, "").Return(false, nil)
	repo.EXPECT().ExistsByRule(gomock.Any(), domain.RuleEmail, &c, "").Return(false, errStoreDown)

	report, err := newDuplicateChecker(repo).Check(context.Background(), &c, "")
	assert.Nil(t, report)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.ErrorIs(t, err, errStoreDown)
}

func newMockedUseCase(t *testing.T) (*registrationUseCase, *mocks.MockRegistrationRepo, *metrics.Metrics) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRegistrationRepo(ctrl)
	m := metrics.New(prometheus.NewRegistry())
	uc := NewRegistrationUseCase(repo, m, quietLogger(), time.Second).(*registrationUseCase)
	return uc, repo, m
}

func TestCreateStoreFailureDuringCheckDoesNotWrite(t *testing.T) {
	uc, repo, _ := newMockedUseCase(t)

	repo.EXPECT().ExistsByRule(gomock.Any(), gomock.Any(), gomock.Any(), "").Return(false, errStoreDown)
	// no Create expectation: the write must not happen

	c := candidate()
	_, err := uc.Create(context.Background(), &c)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, domain.ErrConflict)
}

func TestCreateRaceCaughtByUniqueIndex(t *testing.T) {
	uc, repo, m := newMockedUseCase(t)

	repo.EXPECT().ExistsByRule(gomock.Any(), gomock.Any(), gomock.Any(), "").Return(false, nil).Times(len(domain.UniqueRules))
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.NewDuplicateError(domain.RuleEmail))

	c := candidate()
	_, err := uc.Create(context.Background(), &c)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Conflicts.WithLabelValues("create")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.RegistrationsCreated))
}

func TestCreateAssignsIdentity(t *testing.T) {
	uc, repo, _ := newMockedUseCase(t)
	fixed := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	repo.EXPECT().ExistsByRule(gomock.Any(), gomock.Any(), gomock.Any(), "").Return(false, nil).AnyTimes()
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, reg *domain.Registration) error {
		assert.NotEmpty(t, reg.ID)
		assert.Equal(t, fixed, reg.CreatedAt)
		assert.Equal(t, fixed, reg.UpdatedAt)
		return nil
	})

	c := candidate()
	created, err := uc.Create(context.Background(), &c)
	require.NoError(t, err)
	assert.Equal(t, fixed, created.CreatedAt)
}

func TestUpdateStoreFailure(t *testing.T) {
	uc, repo, _ := newMockedUseCase(t)

	stored := candidate()
	stored.ID = "entry-1"
	repo.EXPECT().GetByID(gomock.Any(), "entry-1").Return(&stored, nil)
	repo.EXPECT().ExistsByRule(gomock.Any(), gomock.Any(), gomock.Any(), "entry-1").Return(false, nil).AnyTimes()
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errStoreDown)

	ward := "Dala"
	_, err := uc.Update(context.Background(), "entry-1", &domain.RegistrationPatch{Ward: &ward})
	assert.ErrorIs(t, err, errStoreDown)
}

func TestListStoreFailure(t *testing.T) {
	uc, repo, _ := newMockedUseCase(t)
	repo.EXPECT().List(gomock.Any()).Return(nil, errStoreDown)

	list, err := uc.List(context.Background())
	assert.Nil(t, list)
	assert.ErrorIs(t, err, errStoreDown)
}

func TestListNilEntriesBecomeEmpty(t *testing.T) {
	uc, repo, _ := newMockedUseCase(t)
	repo.EXPECT().List(gomock.Any()).Return(nil, nil)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list.Entries)
	assert.Zero(t, list.Statistics.TotalEntries)
}

func TestImportStopsOnStoreFailure(t *testing.T) {
	uc, repo, _ := newMockedUseCase(t)

	repo.EXPECT().ExistsByRule(gomock.Any(), gomock.Any(), gomock.Any(), "").Return(false, nil).AnyTimes()
	gomock.InOrder(
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errStoreDown),
	)

	first := candidate()
	second := candidate()
	second.FirstName = "Second"
	third := candidate()
	third.FirstName = "Third"

	result, err := uc.Import(context.Background(), []domain.ImportRow{
		{Line: 2, Registration: first},
		{Line: 3, Registration: second},
		{Line: 4, Registration: third},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errStoreDown)
	assert.Contains(t, err.Error(), "row 3")
	require.NotNil(t, result)
	assert.Equal(t, 1, result.Created)
}

func TestHealthyPropagatesPingError(t *testing.T) {
	uc, repo, _ := newMockedUseCase(t)
	repo.EXPECT().Ping(gomock.Any()).Return(errStoreDown)

	assert.ErrorIs(t, uc.Healthy(context.Background()), errStoreDown)
}
