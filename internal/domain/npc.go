package domain

import "github.com/google/uuid"

// NPCProfession is the trade of a hireable staff member
type NPCProfession string

const (
	ProfessionApprentice NPCProfession = "apprentice"
	ProfessionMerchant   NPCProfession = "merchant"
	ProfessionMiner      NPCProfession = "miner"
	ProfessionAppraiser  NPCProfession = "appraiser"
	ProfessionInnkeeper  NPCProfession = "innkeeper"
)

// NPCBonus is the closed set of passive bonuses staff can grant. The roster
// only stores these; subsystems aggregate them when computing effective
// rates.
type NPCBonus string

const (
	BonusForgeSpeed  NPCBonus = "forgeSpeedBonus"
	BonusQuality     NPCBonus = "qualityBoost"
	BonusMaterial    NPCBonus = "materialSave"
	BonusOrderReward NPCBonus = "orderRewardBoost"
	BonusReputation  NPCBonus = "reputationBoost"
	BonusSuccessRate NPCBonus = "successRate"
)

// MaxNPCExperience caps staff experience growth
const MaxNPCExperience = 5

// HiredNPC is a staff member on the payroll. AvatarSeed is an opaque
// identity for the presentation layer's deterministic portrait generation.
type HiredNPC struct {
	ID              uuid.UUID     `json:"id"`
	Name            string        `json:"name"`
	Profession      NPCProfession `json:"profession"`
	Quality         Quality       `json:"quality"`
	Bonus           NPCBonus      `json:"bonus"`
	BonusValue      float64       `json:"bonus_value"` // percentage points
	Salary          int           `json:"salary"`
	ExperienceLevel int           `json:"experience_level"`
	AvatarSeed      int64         `json:"avatar_seed"`
}

// EffectiveBonus scales the base bonus by experience: each level past the
// first adds 10% of the base value
func (n *HiredNPC) EffectiveBonus() float64 {
	return n.BonusValue * (1 + 0.1*float64(n.ExperienceLevel-1))
}

// NewNPCID returns a fresh roster identifier
func NewNPCID() uuid.UUID {
	return uuid.New()
}
