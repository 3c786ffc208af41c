package gamification

import "github.com/limbo/focusflow/pkg/entity"

const (
	// LevelThreshold is the xp needed to gain one level.
	LevelThreshold = 100

	// XPPerTask is awarded once per task, on its first completion.
	XPPerTask = 10
)

// AwardExperience adds amount to stats.XP. Crossing the threshold subtracts it
// exactly once and raises the level by one, even when amount alone exceeds
// the threshold. The fixed task award can never cross two levels at once.
func AwardExperience(stats entity.UserStats, amount int) (entity.UserStats, bool) {
	if amount <= 0 {
		return stats, false
	}
	stats.XP += amount
	leveledUp := false
	if stats.XP >= LevelThreshold {
		stats.XP -= LevelThreshold
		stats.Level++
		leveledUp = true
	}
	// Keeps xp inside [0, LevelThreshold) for oversized awards.
	if stats.XP >= LevelThreshold {
		stats.XP = LevelThreshold - 1
	}
	return stats, leveledUp
}

// ToggleCompletion flips a task between done and todo. It reports true only on
// the first completion of a task that was never awarded; the caller then
// grants XPPerTask. xpAwarded is never reset.
func ToggleCompletion(t *entity.Task) bool {
	if t.Status != entity.StatusDone && !t.XPAwarded {
		t.Status = entity.StatusDone
		t.XPAwarded = true
		return true
	}
	if t.Status == entity.StatusDone {
		t.Status = entity.StatusTodo
	} else {
		t.Status = entity.StatusDone
	}
	return false
}

// TouchStreak records activity on today. Consecutive days extend the streak,
// a gap restarts it at one and repeated activity on the same day is a no-op.
func TouchStreak(stats entity.UserStats, today string) entity.UserStats {
	switch stats.LastActive {
	case today:
		return stats
	case entity.AddDays(today, -1):
		stats.Streak++
	default:
		stats.Streak = 1
	}
	stats.LastActive = today
	return stats
}

// ValidStats reports whether stats satisfy the singleton's invariants.
func ValidStats(stats entity.UserStats) bool {
	return stats.Level >= 1 && stats.XP >= 0 && stats.XP < LevelThreshold && stats.Streak >= 0
}
