// Package ui holds the terminal styles used by the ff command.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/limbo/focusflow/internal/gamification"
	"github.com/limbo/focusflow/pkg/entity"
	"github.com/shopspring/decimal"
)

const (
	IconDone    = "✅"
	IconTodo    = "⬜"
	IconMoved   = "➡️"
	IconPlus    = "➕"
	IconBolt    = "⚡"
	IconTrophy  = "🏆"
	IconError   = "🧨"
	IconBrain   = "🧠"
	IconMoney   = "💰"
	IconJournal = "📓"
	IconCal     = "📅"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// ShortID is enough of an id to type back into a command.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func StatusIcon(status entity.TaskStatus) string {
	switch status {
	case entity.StatusDone:
		return IconDone
	case entity.StatusMigrated:
		return IconMoved
	default:
		return IconTodo
	}
}

func TaskLine(t entity.Task) string {
	text := t.Text
	switch t.Status {
	case entity.StatusDone:
		text = Muted.Render(text)
	case entity.StatusMigrated:
		text = Muted.Render(text + " (migrated)")
	}
	line := fmt.Sprintf("%s %s %s %s", StatusIcon(t.Status), Muted.Render(ShortID(t.ID)), text, H2.Render("["+string(t.Category)+"]"))
	if len(t.Subtasks) > 0 {
		done := 0
		for _, s := range t.Subtasks {
			if s.Completed {
				done++
			}
		}
		line += Muted.Render(fmt.Sprintf(" %d/%d", done, len(t.Subtasks)))
	}
	return line
}

// Money colors a signed amount.
func Money(d decimal.Decimal) string {
	s := d.StringFixed(2)
	switch d.Sign() {
	case 1:
		return Good.Render("+" + s)
	case -1:
		return Bad.Render(s)
	default:
		return Muted.Render(s)
	}
}

// XPBar draws progress toward the next level, width cells wide.
func XPBar(stats entity.UserStats, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := stats.XP * width / gamification.LevelThreshold
	if filled > width {
		filled = width
	}
	bar := Gold.Render(strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %s %d/%d", Key.Render(fmt.Sprintf("Lv %d", stats.Level)), bar, stats.XP, gamification.LevelThreshold)
}
