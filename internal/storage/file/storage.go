package file

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/promoplay/eggdraw/internal/model"
	"github.com/promoplay/eggdraw/internal/storage"
)

// File names inside the data directory. players.jsonl is the imported
// eligible-persons source, active_players.jsonl holds derived and played
// records, prizes.jsonl is the ordered prize catalog.
const (
	eligibleFile = "players.jsonl"
	activeFile   = "active_players.jsonl"
	catalogFile  = "prizes.jsonl"
)

// Storage is a JSONL flat-file implementation of the storage interface.
// Every write rewrites the affected file through a temp-file rename, so a
// crash never leaves a half-written file behind.
type Storage struct {
	mu  sync.Mutex
	dir string
}

// New creates a file storage rooted at dir, creating the directory and an
// empty active-players file if they do not exist
func New(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	active := filepath.Join(dir, activeFile)
	if _, err := os.Stat(active); errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(active, nil, 0o644); err != nil {
			return nil, fmt.Errorf("create active players file: %w", err)
		}
	} else if err != nil {
		return nil, err
	}

	return &Storage{dir: dir}, nil
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) GetPlayer(ctx context.Context, id model.Identifier) (*model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	players, err := s.readActive()
	if err != nil {
		return nil, err
	}
	for _, p := range players {
		if p.Identifier == id {
			return p, nil
		}
	}
	return nil, model.ErrPlayerNotFound
}

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	players, err := s.readActive()
	if err != nil {
		return err
	}

	replaced := false
	for i, p := range players {
		if p.Identifier == player.Identifier {
			players[i] = player
			replaced = true
			break
		}
	}
	if !replaced {
		players = append(players, player)
	}

	return writeLines(filepath.Join(s.dir, activeFile), players)
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readActive()
}

// Eligible-source operations

func (s *Storage) GetEligible(ctx context.Context, id model.Identifier) (*model.EligiblePerson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	people, err := readLines[model.EligiblePerson](filepath.Join(s.dir, eligibleFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}
	for _, person := range people {
		if person.Identifier == id {
			return person, nil
		}
	}
	return nil, model.ErrPlayerNotFound
}

func (s *Storage) AppendEligible(ctx context.Context, person *model.EligiblePerson) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(person)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(s.dir, eligibleFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return err
	}
	return f.Close()
}

// Catalog operations

func (s *Storage) GetCatalog(ctx context.Context) ([]*model.Prize, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prizes, err := readLines[model.Prize](filepath.Join(s.dir, catalogFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, model.ErrCatalogNotLoaded
		}
		return nil, err
	}
	return prizes, nil
}

func (s *Storage) SaveCatalog(ctx context.Context, prizes []*model.Prize) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeLines(filepath.Join(s.dir, catalogFile), prizes)
}

// Helpers

func (s *Storage) readActive() ([]*model.Player, error) {
	players, err := readLines[model.Player](filepath.Join(s.dir, activeFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return players, nil
}

// readLines parses one JSON record per line, preserving file order and
// skipping blank lines
func readLines[T any](path string) ([]*T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var records []*T
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		record := new(T)
		if err := json.Unmarshal(line, record); err != nil {
			return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// writeLines rewrites the whole file atomically via a temp file + rename
func writeLines[T any](path string, records []*T) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	w := bufio.NewWriter(tmp)
	for _, record := range records {
		data, err := json.Marshal(record)
		if err != nil {
			_ = tmp.Close()
			return err
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			_ = tmp.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
