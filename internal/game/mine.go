package game

import (
	"fmt"
	"time"

	"github.com/forgeline/LegendaryForge_Go/internal/domain"
	"github.com/forgeline/LegendaryForge_Go/internal/metrics"
)

// BattleReport is the outcome of one full attack exchange
type BattleReport struct {
	DamageDealt   int                `json:"damage_dealt"`
	DamageTaken   int                `json:"damage_taken"`
	Victory       bool               `json:"victory"`
	Defeat        bool               `json:"defeat"`
	GoldReward    int                `json:"gold_reward,omitempty"`
	LevelUnlocked int                `json:"level_unlocked,omitempty"`
	Phase         domain.BattlePhase `json:"phase"`
}

// MiningReport is the outcome of a mine action after a victory
type MiningReport struct {
	Drops    []domain.ExpeditionReward `json:"drops"`
	Overflow []domain.ExpeditionReward `json:"overflow,omitempty"`
}

// MineState returns a copy of the mine's current state
func (e *Engine) MineState() domain.MineState {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := e.state.Mine
	out.UnlockedLevels = append([]int(nil), e.state.Mine.UnlockedLevels...)
	out.Logs = append([]domain.BattleLogEntry(nil), e.state.Mine.Logs...)
	if e.state.Mine.CurrentMonster != nil {
		m := *e.state.Mine.CurrentMonster
		out.CurrentMonster = &m
	}
	return out
}

// EnterMine moves the player to a mine level. Locked levels are a no-op
// error. Entry always resets the player to full health and spawns a fresh
// monster; this is also the only way out of a defeat.
func (e *Engine) EnterMine(level int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.state.Mine.LevelUnlocked(level) {
		return domain.ErrLevelLocked
	}

	e.state.Mine.CurrentLevel = level
	e.state.Mine.PlayerHP = e.state.Mine.MaxPlayerHP
	e.state.Mine.CurrentMonster = nil
	e.state.Mine.CanMine = false
	e.state.Mine.RespawnAt = time.Time{}
	e.state.Mine.Phase = domain.PhaseIdle
	e.spawnMonsterLocked()
	e.touch()
	return nil
}

// spawnMonsterLocked rolls a monster from the current level's template pool
func (e *Engine) spawnMonsterLocked() {
	level := e.state.Mine.CurrentLevel
	ml, ok := e.catalog.MineLevel(level)
	if !ok || len(ml.Monsters) == 0 {
		return
	}
	tpl := ml.Monsters[e.rollInt(0, len(ml.Monsters)-1)]
	hp := e.rollInt(tpl.HPMin, tpl.HPMax)
	monster := domain.Monster{
		Name:       tpl.Name,
		Level:      level,
		Attack:     e.rollInt(tpl.AttackMin, tpl.AttackMax),
		Defense:    e.rollInt(tpl.DefenseMin, tpl.DefenseMax),
		HP:         hp,
		MaxHP:      hp,
		GoldReward: e.rollInt(tpl.GoldMin, tpl.GoldMax),
	}
	e.state.Mine.CurrentMonster = &monster
	e.state.Mine.Phase = domain.PhaseIdle
	e.state.Mine.CanMine = false
	e.appendLogLocked(domain.LogInfo, fmt.Sprintf("%s appeared!", monster.Name))
}

// PerformBattle runs one full attack exchange. No-op errors when no
// monster is present, an exchange is already running, or the player sits
// in the terminal defeat phase.
func (e *Engine) PerformBattle() (BattleReport, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Mine.Phase == domain.PhaseDefeat {
		return BattleReport{}, domain.ErrNoMonster
	}
	if e.state.Mine.CurrentMonster == nil {
		return BattleReport{}, domain.ErrNoMonster
	}
	if e.state.Mine.Phase == domain.PhaseFighting {
		return BattleReport{}, domain.ErrBattleBusy
	}

	e.state.Mine.Phase = domain.PhaseFighting
	monster := e.state.Mine.CurrentMonster
	report := BattleReport{}

	// Player strikes first
	damage := e.playerAttackLocked() - monster.Defense
	if damage < 1 {
		damage = 1
	}
	monster.HP -= damage
	report.DamageDealt = damage
	e.appendLogLocked(domain.LogAttack, fmt.Sprintf("You hit %s for %d damage", monster.Name, damage))

	if monster.HP <= 0 {
		report.Victory = true
		report.GoldReward = monster.GoldReward
		e.appendLogLocked(domain.LogVictory, fmt.Sprintf("%s is defeated!", monster.Name))
		e.appendLogLocked(domain.LogLoot, fmt.Sprintf("Looted %d gold", monster.GoldReward))
		e.addGoldLocked(monster.GoldReward)
		e.degradeEquipmentLocked(domain.EquipWeapon, domain.WeaponDecayOnVictory)

		if unlocked := e.unlockNextLevelLocked(); unlocked > 0 {
			report.LevelUnlocked = unlocked
			e.appendLogLocked(domain.LogInfo, fmt.Sprintf("Mine level %d unlocked", unlocked))
		}

		e.state.Mine.CurrentMonster = nil
		e.state.Mine.Phase = domain.PhaseVictory
		e.state.Mine.CanMine = true
		report.Phase = domain.PhaseVictory
		metrics.BattlesTotal.WithLabelValues("victory").Inc()
		e.touch()
		return report, nil
	}

	// Monster retaliates
	retaliation := monster.Attack - e.playerDefenseLocked()
	if retaliation < 1 {
		retaliation = 1
	}
	e.state.Mine.PlayerHP -= retaliation
	report.DamageTaken = retaliation
	e.degradeEquipmentLocked(domain.EquipArmor, domain.ArmorDecayOnHit)
	e.appendLogLocked(domain.LogDamage, fmt.Sprintf("%s hits you for %d damage", monster.Name, retaliation))

	if e.state.Mine.PlayerHP <= 0 {
		e.state.Mine.PlayerHP = 0
		report.Defeat = true
		e.appendLogLocked(domain.LogDefeat, "You collapse and are dragged back to the surface")
		e.state.Mine.CurrentMonster = nil
		e.state.Mine.Phase = domain.PhaseDefeat
		report.Phase = domain.PhaseDefeat
		metrics.BattlesTotal.WithLabelValues("defeat").Inc()
		e.touch()
		return report, nil
	}

	e.state.Mine.Phase = domain.PhaseIdle
	report.Phase = domain.PhaseIdle
	metrics.BattlesTotal.WithLabelValues("exchange").Inc()
	e.touch()
	return report, nil
}

// PerformMining digs the vein opened by a victory. Every configured drop
// fires independently; a level that rolls nothing still pays the first
// table entry at minimum quantity so mining never comes up empty. Wears
// the weapon and schedules the next monster.
func (e *Engine) PerformMining() (MiningReport, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.state.Mine.CanMine {
		return MiningReport{}, domain.ErrCannotMine
	}
	ml, ok := e.catalog.MineLevel(e.state.Mine.CurrentLevel)
	if !ok || len(ml.Drops) == 0 {
		return MiningReport{}, domain.ErrCannotMine
	}

	e.state.Mine.Phase = domain.PhaseMining
	e.degradeEquipmentLocked(domain.EquipWeapon, domain.WeaponDecayOnMining)

	var rolled []domain.ExpeditionReward
	for _, drop := range ml.Drops {
		if e.rollFloat() >= drop.Chance {
			continue
		}
		rolled = append(rolled, domain.ExpeditionReward{
			Type:     drop.Type,
			Quantity: e.rollInt(drop.QuantityMin, drop.QuantityMax),
		})
	}
	if len(rolled) == 0 {
		// Guaranteed fallback: the vein always yields something
		rolled = append(rolled, domain.ExpeditionReward{
			Type:     ml.Drops[0].Type,
			Quantity: ml.Drops[0].QuantityMin,
		})
	}

	report := MiningReport{}
	for _, r := range rolled {
		if e.addMaterialLocked(r.Type, r.Quantity) {
			report.Drops = append(report.Drops, r)
			e.appendLogLocked(domain.LogLoot, fmt.Sprintf("Mined %dx %s", r.Quantity, r.Type))
			metrics.MiningDrops.WithLabelValues(string(r.Type)).Inc()
		} else {
			report.Overflow = append(report.Overflow, r)
			e.appendLogLocked(domain.LogInfo, fmt.Sprintf("No room for %dx %s", r.Quantity, r.Type))
		}
	}

	e.state.Mine.CanMine = false
	e.state.Mine.Phase = domain.PhaseIdle
	e.state.Mine.RespawnAt = e.now().Add(domain.MonsterRespawnDelaySeconds * time.Second)
	e.touch()
	return report, nil
}

// unlockNextLevelLocked opens the next mine level when the player just won
// on the deepest unlocked one. Returns the newly unlocked level, or 0.
func (e *Engine) unlockNextLevelLocked() int {
	current := e.state.Mine.CurrentLevel
	if current != e.state.Mine.HighestUnlocked() || current >= domain.MaxMineLevel {
		return 0
	}
	next := current + 1
	if e.state.Mine.LevelUnlocked(next) {
		return 0
	}
	e.state.Mine.UnlockedLevels = append(e.state.Mine.UnlockedLevels, next)
	return next
}

// degradeEquipmentLocked wears the equipped piece in a slot, destroying it
// at zero durability. A destroyed piece is discarded, not returned to the
// inventory.
func (e *Engine) degradeEquipmentLocked(kind domain.EquipmentKind, amount int) {
	slot := e.state.Equipped.Slot(kind)
	if slot == nil || *slot == nil {
		return
	}
	item := *slot
	item.Durability -= amount
	if item.Durability <= 0 {
		e.appendLogLocked(domain.LogInfo, fmt.Sprintf("%s broke!", item.Name))
		*slot = nil
	}
}

// appendLogLocked pushes a battle log entry, dropping the oldest past the cap
func (e *Engine) appendLogLocked(t domain.BattleLogType, msg string) {
	e.state.Mine.Logs = append(e.state.Mine.Logs, domain.BattleLogEntry{
		Type:    t,
		Message: msg,
		At:      e.now(),
	})
	if overflow := len(e.state.Mine.Logs) - domain.BattleLogCap; overflow > 0 {
		e.state.Mine.Logs = e.state.Mine.Logs[overflow:]
	}
}

// playerAttackLocked derives attack from the equipped weapon and accessory
func (e *Engine) playerAttackLocked() int {
	attack := domain.UnarmedAttack
	if w := e.state.Equipped.Weapon; w != nil {
		attack += w.Attack
	}
	if a := e.state.Equipped.Accessory; a != nil {
		attack += a.Attack
	}
	return attack
}

// playerDefenseLocked derives defense from the equipped armor and accessory
func (e *Engine) playerDefenseLocked() int {
	defense := 0
	if ar := e.state.Equipped.Armor; ar != nil {
		defense += ar.Defense
	}
	if a := e.state.Equipped.Accessory; a != nil {
		defense += a.Defense
	}
	return defense
}

// PlayerPower exposes the derived combat stats as a read model
func (e *Engine) PlayerPower() (attack, defense int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.playerAttackLocked(), e.playerDefenseLocked()
}
