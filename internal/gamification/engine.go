package gamification

import (
	"context"
	"log/slog"

	"github.com/limbo/focusflow/pkg/entity"
)

type StatsStore interface {
	// Applies fn to the stats singleton under the store lock and persists the result
	UpdateStats(ctx context.Context, fn func(stats *entity.UserStats)) (entity.UserStats, error)
	// Current calendar day according to the store clock
	Today() string
}

// Award describes the outcome of one experience grant.
type Award struct {
	Gained    int              `json:"gained"`
	LeveledUp bool             `json:"leveledUp"`
	Stats     entity.UserStats `json:"stats"`
}

// Engine is the only writer of UserStats.
type Engine struct {
	store StatsStore
}

func NewEngine(store StatsStore) *Engine {
	return &Engine{store: store}
}

// Award grants amount xp and records today's activity in the streak.
func (e *Engine) Award(ctx context.Context, amount int) (Award, error) {
	today := e.store.Today()
	var leveledUp bool
	stats, err := e.store.UpdateStats(ctx, func(stats *entity.UserStats) {
		var next entity.UserStats
		next, leveledUp = AwardExperience(*stats, amount)
		*stats = TouchStreak(next, today)
	})
	if err != nil {
		return Award{}, err
	}
	if leveledUp {
		slog.Default().Info("level up", slog.Int("level", stats.Level))
	}
	return Award{
		Gained:    amount,
		LeveledUp: leveledUp,
		Stats:     stats,
	}, nil
}
