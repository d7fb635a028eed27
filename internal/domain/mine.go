package domain

import "time"

// BattlePhase is the state of the mine combat loop
type BattlePhase string

const (
	PhaseIdle     BattlePhase = "idle"
	PhaseFighting BattlePhase = "fighting"
	PhaseVictory  BattlePhase = "victory"
	PhaseDefeat   BattlePhase = "defeat"
	PhaseMining   BattlePhase = "mining"
)

// Monster is the current opponent in the mine
type Monster struct {
	Name       string `json:"name"`
	Level      int    `json:"level"`
	Attack     int    `json:"attack"`
	Defense    int    `json:"defense"`
	HP         int    `json:"hp"`
	MaxHP      int    `json:"max_hp"`
	GoldReward int    `json:"gold_reward"`
}

// BattleLogType tags log entries so the presentation layer can filter them
type BattleLogType string

const (
	LogAttack  BattleLogType = "attack"
	LogDamage  BattleLogType = "damage"
	LogVictory BattleLogType = "victory"
	LogDefeat  BattleLogType = "defeat"
	LogLoot    BattleLogType = "loot"
	LogInfo    BattleLogType = "info"
)

// BattleLogEntry is one line of the mine's combat journal
type BattleLogEntry struct {
	Type    BattleLogType `json:"type"`
	Message string        `json:"message"`
	At      time.Time     `json:"at"`
}

// BattleLogCap bounds the combat journal; oldest entries drop first
const BattleLogCap = 50

// MaxMineLevel is the deepest unlockable mine level
const MaxMineLevel = 10

// MineState tracks the player's progress and the combat loop inside the mine
type MineState struct {
	CurrentLevel   int              `json:"current_level"`
	UnlockedLevels []int            `json:"unlocked_levels"`
	CurrentMonster *Monster         `json:"current_monster,omitempty"`
	Phase          BattlePhase      `json:"phase"`
	PlayerHP       int              `json:"player_hp"`
	MaxPlayerHP    int              `json:"max_player_hp"`
	Logs           []BattleLogEntry `json:"logs,omitempty"`
	CanMine        bool             `json:"can_mine"`
	// RespawnAt schedules the next monster after mining; zero means none
	// pending
	RespawnAt time.Time `json:"respawn_at,omitempty"`
}

// LevelUnlocked reports whether the given mine level is accessible
func (m *MineState) LevelUnlocked(level int) bool {
	for _, l := range m.UnlockedLevels {
		if l == level {
			return true
		}
	}
	return false
}

// HighestUnlocked returns the deepest unlocked level
func (m *MineState) HighestUnlocked() int {
	highest := 0
	for _, l := range m.UnlockedLevels {
		if l > highest {
			highest = l
		}
	}
	return highest
}
