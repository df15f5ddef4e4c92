package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/promoplay/eggdraw/internal/model"
)

type StorageSuite struct {
	suite.Suite
	dir     string
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.dir = s.T().TempDir()

	var err error
	s.storage, err = New(s.dir)
	s.Require().NoError(err)
	s.ctx = context.Background()
}

func intPtr(n int) *int {
	return &n
}

func (s *StorageSuite) TestNewCreatesActiveFile() {
	_, err := os.Stat(filepath.Join(s.dir, activeFile))
	s.NoError(err)
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		Identifier: "IT123",
		Name:       "Alice",
		Email:      "alice@example.com",
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "IT123")
	s.Require().NoError(err)
	s.Equal(player.Identifier, retrieved.Identifier)
	s.Equal(player.Name, retrieved.Name)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestSavePlayerReplacesExisting() {
	now := time.Now().UTC().Truncate(time.Second)
	player := &model.Player{Identifier: "IT123", Name: "Alice"}
	_ = s.storage.SavePlayer(s.ctx, player)

	player.MarkPlayed("Coffee Mug", now)
	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.True(players[0].HasPlayed)
	s.Equal("Coffee Mug", players[0].Prize)
}

func (s *StorageSuite) TestListPlayersPreservesFileOrder() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{Identifier: "IT300"})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{Identifier: "IT100"})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{Identifier: "IT200"})

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 3)
	s.Equal(model.Identifier("IT300"), players[0].Identifier)
	s.Equal(model.Identifier("IT100"), players[1].Identifier)
	s.Equal(model.Identifier("IT200"), players[2].Identifier)
}

// Eligible-source tests

func (s *StorageSuite) TestGetEligibleMissingFile() {
	_, err := s.storage.GetEligible(s.ctx, "IT123")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

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

func (s *StorageSuite) TestAppendEligibleKeepsExistingLines() {
	_ = s.storage.AppendEligible(s.ctx, &model.EligiblePerson{Identifier: "IT100", Name: "First"})
	_ = s.storage.AppendEligible(s.ctx, &model.EligiblePerson{Identifier: "IT200", Name: "Second"})

	first, err := s.storage.GetEligible(s.ctx, "IT100")
	s.Require().NoError(err)
	s.Equal("First", first.Name)

	second, err := s.storage.GetEligible(s.ctx, "IT200")
	s.Require().NoError(err)
	s.Equal("Second", second.Name)
}

func (s *StorageSuite) TestReadsHandImportedEligibleFile() {
	lines := `{"piva":"IT555","partner":"Imported Srl","email":"import@example.com"}
{"piva":"IT556","partner":"Other Srl"}
`
	err := os.WriteFile(filepath.Join(s.dir, eligibleFile), []byte(lines), 0o644)
	s.Require().NoError(err)

	person, err := s.storage.GetEligible(s.ctx, "IT555")
	s.Require().NoError(err)
	s.Equal("Imported Srl", person.Name)
	s.Equal("import@example.com", person.Email)
}

// Catalog tests

func (s *StorageSuite) TestGetCatalogMissingFile() {
	_, err := s.storage.GetCatalog(s.ctx)
	s.ErrorIs(err, model.ErrCatalogNotLoaded)
}

func (s *StorageSuite) TestCatalogRoundTrip() {
	catalog := []*model.Prize{
		{ID: "mug", Name: "Coffee Mug", Weight: 50, MaxStock: intPtr(10), Used: intPtr(3)},
		{ID: "pen", Name: "Pen", Weight: 30},
	}

	err := s.storage.SaveCatalog(s.ctx, catalog)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetCatalog(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(retrieved, 2)
	s.Equal("mug", retrieved[0].ID)
	s.Equal(3, *retrieved[0].Used)
	s.Nil(retrieved[1].MaxStock)
}

func (s *StorageSuite) TestSaveCatalogOverwritesAtomically() {
	_ = s.storage.SaveCatalog(s.ctx, []*model.Prize{
		{ID: "mug", Name: "Coffee Mug", Weight: 50},
		{ID: "pen", Name: "Pen", Weight: 30},
	})
	_ = s.storage.SaveCatalog(s.ctx, []*model.Prize{
		{ID: "tv", Name: "Television", Weight: 1},
	})

	retrieved, err := s.storage.GetCatalog(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(retrieved, 1)
	s.Equal("tv", retrieved[0].ID)
}
