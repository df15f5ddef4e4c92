package registry

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/promoplay/eggdraw/internal/dependencies/mocks"
	"github.com/promoplay/eggdraw/internal/model"
	"github.com/promoplay/eggdraw/internal/storage/memory"
	"github.com/promoplay/eggdraw/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) addEligible(id model.Identifier, name, email string) {
	err := s.storage.AppendEligible(s.ctx, &model.EligiblePerson{
		Identifier: id,
		Name:       name,
		Email:      email,
	})
	s.Require().NoError(err)
}

// Authorize

func (s *ServiceSuite) TestAuthorizeReturnsActiveRecord() {
	active := &model.Player{Identifier: "IT123", Name: "Alice", CreatedAt: s.clock.Now()}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, active))

	player, err := s.service.Authorize(s.ctx, "IT123")
	s.Require().NoError(err)
	s.Equal("Alice", player.Name)
	s.False(player.HasPlayed)
}

func (s *ServiceSuite) TestAuthorizeDerivesFromEligibleSource() {
	s.addEligible("IT123", "  Alice Srl  ", "alice@example.com")

	player, err := s.service.Authorize(s.ctx, "IT123")
	s.Require().NoError(err)
	s.Equal("Alice Srl", player.Name)
	s.Equal("alice@example.com", player.Email)
	s.Equal(s.clock.Now(), player.CreatedAt)

	// Derived players are not persisted until they play
	_, err = s.storage.GetPlayer(s.ctx, "IT123")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestAuthorizeUnknownIdentifier() {
	_, err := s.service.Authorize(s.ctx, "IT999")
	s.ErrorIs(err, model.ErrNotEligible)
}

// CheckNotPlayed

func (s *ServiceSuite) TestCheckNotPlayed() {
	player := &model.Player{Identifier: "IT123"}
	s.NoError(s.service.CheckNotPlayed(player))

	player.MarkPlayed("Coffee Mug", s.clock.Now())
	s.ErrorIs(s.service.CheckNotPlayed(player), model.ErrAlreadyPlayed)
}

// RecordResult

func (s *ServiceSuite) TestRecordResultPersistsPlay() {
	s.addEligible("IT123", "Alice", "alice@example.com")

	player, err := s.service.RecordResult(s.ctx, "IT123", "Coffee Mug", "")
	s.Require().NoError(err)
	s.True(player.HasPlayed)
	s.Equal("Coffee Mug", player.Prize)
	s.Require().NotNil(player.PlayedAt)
	s.Equal(s.clock.Now(), *player.PlayedAt)

	stored, err := s.storage.GetPlayer(s.ctx, "IT123")
	s.Require().NoError(err)
	s.True(stored.HasPlayed)
	s.Equal("Coffee Mug", stored.Prize)
}

func (s *ServiceSuite) TestRecordResultOverridesEmail() {
	s.addEligible("IT123", "Alice", "old@example.com")

	player, err := s.service.RecordResult(s.ctx, "IT123", "Coffee Mug", "new@example.com")
	s.Require().NoError(err)
	s.Equal("new@example.com", player.Email)
}

func (s *ServiceSuite) TestRecordResultRejectsSecondPlay() {
	s.addEligible("IT123", "Alice", "")

	_, err := s.service.RecordResult(s.ctx, "IT123", "Coffee Mug", "")
	s.Require().NoError(err)

	_, err = s.service.RecordResult(s.ctx, "IT123", "Pen", "")
	s.ErrorIs(err, model.ErrAlreadyPlayed)

	stored, err := s.storage.GetPlayer(s.ctx, "IT123")
	s.Require().NoError(err)
	s.Equal("Coffee Mug", stored.Prize)
}

func (s *ServiceSuite) TestRecordResultUnknownIdentifier() {
	_, err := s.service.RecordResult(s.ctx, "IT999", "Coffee Mug", "")
	s.ErrorIs(err, model.ErrNotEligible)
}

func (s *ServiceSuite) TestConcurrentRecordsSingleWinner() {
	s.addEligible("IT123", "Alice", "")

	const n = 20
	var wg sync.WaitGroup
	results := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.service.RecordResult(s.ctx, "IT123", "Coffee Mug", "")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			s.ErrorIs(err, model.ErrAlreadyPlayed)
		}
	}
	s.Equal(1, succeeded)
}

// Preauthorize

func (s *ServiceSuite) TestPreauthorizeAddsEligiblePerson() {
	err := s.service.Preauthorize(s.ctx, "IT123", "Alice Srl", "alice@example.com")
	s.Require().NoError(err)

	player, err := s.service.Authorize(s.ctx, "IT123")
	s.Require().NoError(err)
	s.Equal("Alice Srl", player.Name)
}

func (s *ServiceSuite) TestPreauthorizeRejectsExistingEligible() {
	s.addEligible("IT123", "Alice", "")

	err := s.service.Preauthorize(s.ctx, "IT123", "Alice Again", "")
	s.ErrorIs(err, model.ErrPlayerExists)
}

func (s *ServiceSuite) TestPreauthorizeRejectsActivePlayer() {
	s.Require().NoError(s.storage.SavePlayer(s.ctx, &model.Player{Identifier: "IT123", Name: "Alice"}))

	err := s.service.Preauthorize(s.ctx, "IT123", "Alice Again", "")
	s.ErrorIs(err, model.ErrPlayerExists)
}

// ListActive

func (s *ServiceSuite) TestListActive() {
	s.addEligible("IT123", "Alice", "")
	s.Require().NoError(s.storage.SavePlayer(s.ctx, &model.Player{Identifier: "IT200", Name: "Bob"}))

	players, err := s.service.ListActive(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal(model.Identifier("IT200"), players[0].Identifier)
}

// failingStorage exercises the error-passthrough paths
type failingStorage struct {
	*memory.Storage
	err error
}

func (f *failingStorage) GetPlayer(ctx context.Context, id model.Identifier) (*model.Player, error) {
	return nil, f.err
}

func (s *ServiceSuite) TestAuthorizeStorageError() {
	inner := &failingStorage{Storage: memory.New(), err: errors.New("connection reset")}
	service := New(inner, s.clock, testutil.NopLogger())

	_, err := service.Authorize(s.ctx, "IT123")
	s.ErrorContains(err, "connection reset")
}
