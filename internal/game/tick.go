package game

import (
	"time"

	"github.com/forgeline/LegendaryForge_Go/internal/domain"
	"github.com/forgeline/LegendaryForge_Go/internal/metrics"
)

// TickReport collects everything that happened during one tick so the
// presentation layer can surface it without diffing snapshots
type TickReport struct {
	EventReady        bool                      `json:"event_ready"`
	Cards             []domain.EventCard        `json:"cards,omitempty"`
	ExpiredOrders     []domain.Order            `json:"expired_orders,omitempty"`
	ExpeditionResults []domain.ExpeditionResult `json:"expedition_results,omitempty"`
	ExpiredEffects    []domain.EffectType       `json:"expired_effects,omitempty"`
	MonsterSpawned    bool                      `json:"monster_spawned"`
}

// DayReport summarizes end-of-day bookkeeping
type DayReport struct {
	Day           int               `json:"day"`
	SalariesPaid  int               `json:"salaries_paid"`
	DepartedStaff []domain.HiredNPC `json:"departed_staff,omitempty"`
}

// TickSecond advances all time-driven subsystems by one second. The caller
// owns the cadence; the engine never runs its own timers.
func (e *Engine) TickSecond() TickReport {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	report := TickReport{}

	// Event cooldown pauses while a draw is waiting on the player
	if e.pendingCards == nil {
		e.state.EventCooldown--
		if e.state.EventCooldown <= 0 {
			if cards := e.drawCardsLocked(domain.EventDrawCount); len(cards) > 0 {
				e.pendingCards = cards
				report.EventReady = true
				report.Cards = append([]domain.EventCard(nil), cards...)
				metrics.EventsDrawn.Inc()
			}
			e.state.EventCooldown = domain.EventCooldownSeconds
		}
	}

	report.ExpiredOrders = e.expireOrdersLocked(now)
	report.ExpeditionResults = e.completeExpeditionsLocked(now)

	e.tickEffectTimersLocked()
	report.ExpiredEffects = e.pruneEffectsLocked()

	// Respawn after the post-mining delay
	if e.respawnDueLocked(now) {
		e.state.Mine.RespawnAt = time.Time{}
		e.spawnMonsterLocked()
		report.MonsterSpawned = true
	}

	e.touch()
	return report
}

func (e *Engine) respawnDueLocked(now time.Time) bool {
	return e.state.Mine.CurrentMonster == nil &&
		e.state.Mine.Phase == domain.PhaseIdle &&
		!e.state.Mine.RespawnAt.IsZero() &&
		!now.Before(e.state.Mine.RespawnAt)
}

// tickEffectTimersLocked counts down duration-tracked effects by one second
func (e *Engine) tickEffectTimersLocked() {
	for i := range e.state.ActiveEffects {
		if t := e.state.ActiveEffects[i].RemainingTime; t != nil && *t > 0 {
			*t = *t - 1
		}
	}
}

// AdvanceDay closes out the current day: staff salaries come due and any
// NPC the forge cannot afford walks out. Upgrades, reputation and the
// mine's unlock progress are untouched.
func (e *Engine) AdvanceDay() DayReport {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.Day++
	report := DayReport{Day: e.state.Day}

	kept := e.state.HiredNPCs[:0]
	for _, npc := range e.state.HiredNPCs {
		if err := e.spendGoldLocked(npc.Salary); err != nil {
			report.DepartedStaff = append(report.DepartedStaff, npc)
			continue
		}
		report.SalariesPaid += npc.Salary
		kept = append(kept, npc)
	}
	e.state.HiredNPCs = kept

	metrics.DaysAdvanced.Inc()
	e.touch()
	return report
}

// Day returns the current in-game day
func (e *Engine) Day() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Day
}
