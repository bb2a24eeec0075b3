package systems

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	cfg "github.com/automoto/meowwww/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// ScoreStore persists the high score as decimal text in one gdata item.
// A nil *ScoreStore is valid: it loads 0 and saves nothing.
type ScoreStore struct {
	manager *gdata.Manager
	key     string
}

// OpenScoreStore opens the save data of the named application.
func OpenScoreStore(appName string) (*ScoreStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("could not open save data: %w", err)
	}
	return &ScoreStore{manager: m, key: cfg.Assets.HighScore}, nil
}

// Load returns the saved high score. A missing or unreadable value is 0.
func (s *ScoreStore) Load() int {
	if s == nil || s.manager == nil {
		return 0
	}

	data, err := s.manager.LoadItem(s.key)
	if err != nil {
		log.Printf("Warning: Could not load high score: %v", err)
		return 0
	}
	if data == nil {
		// Nothing saved yet
		return 0
	}

	score, err := ParseHighScore(data)
	if err != nil {
		log.Printf("Warning: Could not parse saved high score: %v", err)
		return 0
	}
	return score
}

// Save writes score, replacing the previous value.
func (s *ScoreStore) Save(score int) error {
	if s == nil || s.manager == nil {
		return nil
	}
	if err := s.manager.SaveItem(s.key, []byte(strconv.Itoa(score))); err != nil {
		return fmt.Errorf("could not save high score: %w", err)
	}
	return nil
}

// ParseHighScore reads a non-negative decimal integer, ignoring surrounding
// whitespace.
func ParseHighScore(data []byte) (int, error) {
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, err
	}
	if score < 0 {
		return 0, fmt.Errorf("negative high score %d", score)
	}
	return score, nil
}

// SaveHighScore persists the session's high score, logging failures.
func SaveHighScore(ecs *ecs.ECS, store *ScoreStore) {
	session := GetOrCreateSession(ecs)
	if err := store.Save(session.HighScore); err != nil {
		log.Printf("Warning: %v", err)
	}
}
