//go:build integration

package applications

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/riwi/jobboard-backend/pkg/db"
	"github.com/riwi/jobboard-backend/pkg/db/models"
	"github.com/riwi/jobboard-backend/pkg/enums"
	pkgerrors "github.com/riwi/jobboard-backend/pkg/errors"
	"github.com/riwi/jobboard-backend/pkg/testutil/containers"
)

// ConcurrencySuite hammers the engine from many goroutines against a real
// Postgres so the row locks, not the test scheduler, decide the winners.
type ConcurrencySuite struct {
	suite.Suite
	client *db.Client
	svc    Service
	seq    int
}

func TestConcurrencySuite(t *testing.T) {
	suite.Run(t, new(ConcurrencySuite))
}

func (s *ConcurrencySuite) SetupSuite() {
	s.client = containers.Postgres(s.T())
	svc, err := NewService(ServiceParams{Repo: NewRepository(s.client.DB()), Tx: s.client})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *ConcurrencySuite) newCoder() *models.User {
	s.seq++
	u := &models.User{
		Name:         fmt.Sprintf("Coder %d", s.seq),
		Email:        fmt.Sprintf("race%d@riwi.io", s.seq),
		PasswordHash: "x",
		Role:         enums.RoleCoder,
		Status:       models.UserStatusActive,
	}
	s.Require().NoError(s.client.DB().Create(u).Error)
	return u
}

func (s *ConcurrencySuite) newVacancy(maxApplicants int) *models.Vacancy {
	s.seq++
	v := &models.Vacancy{
		Title:         fmt.Sprintf("Race %d", s.seq),
		Description:   "d",
		Technologies:  "go",
		Seniority:     "junior",
		Location:      "Medellín",
		Modality:      enums.ModalityHybrid,
		SalaryRange:   "1",
		Company:       "Riwi",
		MaxApplicants: maxApplicants,
		IsActive:      true,
	}
	s.Require().NoError(s.client.DB().Create(v).Error)
	return v
}

type applyOutcome struct {
	ok    int
	rule  int
	dup   int
	other []error
}

func (s *ConcurrencySuite) race(pairs [][2]uint) applyOutcome {
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		out applyOutcome
	)
	start := make(chan struct{})
	for _, p := range pairs {
		wg.Add(1)
		go func(candidateID, vacancyID uint) {
			defer wg.Done()
			<-start
			_, err := s.svc.Apply(context.Background(), candidateID, vacancyID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				out.ok++
			case pkgerrors.IsCode(err, pkgerrors.CodeRuleViolation):
				out.rule++
			case pkgerrors.IsCode(err, pkgerrors.CodeConflict):
				out.dup++
			default:
				out.other = append(out.other, err)
			}
		}(p[0], p[1])
	}
	close(start)
	wg.Wait()
	return out
}

func (s *ConcurrencySuite) TestVacancyCapacityHoldsUnderContention() {
	vacancy := s.newVacancy(2)
	pairs := make([][2]uint, 0, 10)
	for i := 0; i < 10; i++ {
		pairs = append(pairs, [2]uint{s.newCoder().ID, vacancy.ID})
	}

	out := s.race(pairs)

	s.Empty(out.other)
	s.Equal(2, out.ok)
	s.Equal(8, out.rule)

	var live int64
	s.Require().NoError(s.client.DB().Model(&models.Application{}).Where("vacancy_id = ?", vacancy.ID).Count(&live).Error)
	s.EqualValues(2, live)
}

func (s *ConcurrencySuite) TestCandidateCapHoldsUnderContention() {
	coder := s.newCoder()
	pairs := make([][2]uint, 0, 6)
	for i := 0; i < 6; i++ {
		pairs = append(pairs, [2]uint{coder.ID, s.newVacancy(10).ID})
	}

	out := s.race(pairs)

	s.Empty(out.other)
	s.Equal(MaxActiveApplicationsPerCandidate, out.ok)
	s.Equal(6-MaxActiveApplicationsPerCandidate, out.rule)
}

func (s *ConcurrencySuite) TestDuplicateApplyHasOneWinner() {
	coder := s.newCoder()
	vacancy := s.newVacancy(10)
	pairs := make([][2]uint, 0, 5)
	for i := 0; i < 5; i++ {
		pairs = append(pairs, [2]uint{coder.ID, vacancy.ID})
	}

	out := s.race(pairs)

	s.Empty(out.other)
	s.Equal(1, out.ok)
	s.Equal(4, out.dup)
}
