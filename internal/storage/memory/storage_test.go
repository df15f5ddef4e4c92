package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/promoplay/eggdraw/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func intPtr(n int) *int {
	return &n
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		Identifier: "IT123",
		Name:       "Alice",
		CreatedAt:  time.Now(),
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "IT123")
	s.Require().NoError(err)
	s.Equal(player.Identifier, retrieved.Identifier)
	s.Equal(player.Name, retrieved.Name)
	s.False(retrieved.HasPlayed)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestGetPlayerReturnsCopy() {
	player := &model.Player{Identifier: "IT123", Name: "Alice"}
	_ = s.storage.SavePlayer(s.ctx, player)

	first, _ := s.storage.GetPlayer(s.ctx, "IT123")
	first.HasPlayed = true

	second, _ := s.storage.GetPlayer(s.ctx, "IT123")
	s.False(second.HasPlayed)
}

func (s *StorageSuite) TestSavePlayerOverwrites() {
	player := &model.Player{Identifier: "IT123", Name: "Alice"}
	_ = s.storage.SavePlayer(s.ctx, player)

	now := time.Now()
	player.MarkPlayed("Coffee Mug", now)
	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "IT123")
	s.Require().NoError(err)
	s.True(retrieved.HasPlayed)
	s.Equal("Coffee Mug", retrieved.Prize)
	s.Require().NotNil(retrieved.PlayedAt)
	s.True(retrieved.PlayedAt.Equal(now))
}

func (s *StorageSuite) TestListPlayersSortedByIdentifier() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{Identifier: "IT900"})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{Identifier: "IT100"})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{Identifier: "IT500"})

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 3)
	s.Equal(model.Identifier("IT100"), players[0].Identifier)
	s.Equal(model.Identifier("IT500"), players[1].Identifier)
	s.Equal(model.Identifier("IT900"), players[2].Identifier)
}

// Eligible-source tests

func (s *StorageSuite) TestAppendAndGetEligible() {
	person := &model.EligiblePerson{
		Identifier: "IT123",
		Name:       "Alice Srl",
		Email:      "alice@example.com",
	}

	err := s.storage.AppendEligible(s.ctx, person)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetEligible(s.ctx, "IT123")
	s.Require().NoError(err)
	s.Equal(person.Name, retrieved.Name)
	s.Equal(person.Email, retrieved.Email)
}

func (s *StorageSuite) TestGetEligibleNotFound() {
	_, err := s.storage.GetEligible(s.ctx, "IT999")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Catalog tests

func (s *StorageSuite) TestGetCatalogNotLoaded() {
	_, err := s.storage.GetCatalog(s.ctx)
	s.ErrorIs(err, model.ErrCatalogNotLoaded)
}

func (s *StorageSuite) TestCatalogRoundTripPreservesOrderAndCounters() {
	catalog := []*model.Prize{
		{ID: "mug", Name: "Coffee Mug", Weight: 50, MaxStock: intPtr(10), Used: intPtr(3)},
		{ID: "pen", Name: "Pen", Weight: 30},
		{ID: "tv", Name: "Television", Weight: 1, MaxStock: intPtr(1), Used: intPtr(0)},
	}

	err := s.storage.SaveCatalog(s.ctx, catalog)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetCatalog(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(retrieved, 3)
	s.Equal("mug", retrieved[0].ID)
	s.Equal("pen", retrieved[1].ID)
	s.Equal("tv", retrieved[2].ID)
	s.Equal(3, *retrieved[0].Used)
	s.Nil(retrieved[1].MaxStock)
	s.Equal(0, *retrieved[2].Used)
}

func (s *StorageSuite) TestSaveCatalogCopiesInput() {
	catalog := []*model.Prize{
		{ID: "mug", Name: "Coffee Mug", Weight: 50, MaxStock: intPtr(10), Used: intPtr(0)},
	}
	_ = s.storage.SaveCatalog(s.ctx, catalog)

	*catalog[0].Used = 7

	retrieved, _ := s.storage.GetCatalog(s.ctx)
	s.Equal(0, *retrieved[0].Used)
}
