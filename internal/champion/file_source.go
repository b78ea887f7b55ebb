package champion

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Data Dragon envelopes: both files wrap their payload in a "data" map.
type rosterFile struct {
	Data map[string]Summary `json:"data"`
}

type championFile struct {
	Data map[string]Champion `json:"data"`
}

// FileSource serves champion data from a directory laid out as
//
//	<dir>/champions_list.json
//	<dir>/champions/<id>.json
//
// Loaded files are kept in memory for the life of the process.
type FileSource struct {
	dir string
	log *zap.Logger

	mu        sync.Mutex
	roster    []Summary
	champions map[string]*Champion
}

func NewFileSource(dir string, log *zap.Logger) *FileSource {
	if log == nil {
		log = zap.NewNop()
	}
	return &FileSource{
		dir:       dir,
		log:       log,
		champions: make(map[string]*Champion),
	}
}

func (s *FileSource) Roster(ctx context.Context) ([]Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.roster != nil {
		return s.roster, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var f rosterFile
	if err := readJSON(filepath.Join(s.dir, "champions_list.json"), &f); err != nil {
		return nil, fmt.Errorf("load champion roster: %w", err)
	}

	roster := make([]Summary, 0, len(f.Data))
	for _, c := range f.Data {
		roster = append(roster, c)
	}
	slices.SortFunc(roster, func(a, b Summary) int { return strings.Compare(a.Name, b.Name) })

	s.roster = roster
	s.log.Info("champion roster loaded", zap.Int("count", len(roster)))
	return roster, nil
}

func (s *FileSource) Champion(ctx context.Context, id string) (*Champion, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.champions[id]; ok {
		return c, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var f championFile
	err := readJSON(filepath.Join(s.dir, "champions", id+".json"), &f)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		s.log.Warn("failed to load champion data", zap.String("champion", id), zap.Error(err))
		return nil, fmt.Errorf("load champion %s: %w", id, err)
	}

	c, ok := f.Data[id]
	if !ok {
		return nil, ErrNotFound
	}
	if len(c.Spells) > 4 {
		c.Spells = c.Spells[:4]
	}
	s.champions[id] = &c
	return &c, nil
}

func readJSON(path string, v any) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return json.NewDecoder(file).Decode(v)
}

// validID keeps ids to Data Dragon's alphanumeric keys so they cannot
// escape the data directory.
func validID(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}
