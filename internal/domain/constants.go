package domain

// Crafting policy
const (
	// CraftBaseScoreMin/Max bound the randomized base score per craft
	CraftBaseScoreMin = 50
	CraftBaseScoreMax = 80
	// ForgePerformanceMin/Max bound the minigame multiplier the
	// presentation layer reports
	ForgePerformanceMin = 0.8
	ForgePerformanceMax = 1.2
)

// Order policy
const (
	// OrderMatchBaseScore is the starting score before adjustments
	OrderMatchBaseScore = 50
	// OrderTypeMismatchPenalty applies when the delivered kind differs
	// from a specific requirement
	OrderTypeMismatchPenalty = 30
	// OrderStatUnmetPenalty applies per unmet attack/defense threshold
	OrderStatUnmetPenalty = 20
	// OrderMismatchRewardRate halves the payout for non-matching deliveries
	OrderMismatchRewardRate = 0.5
	// OrderExpiryReputationPenalty applies when a timed order lapses or is
	// cancelled early
	OrderExpiryReputationPenalty = 10
	// HaggleBonusRate is the extra payout on a won haggle
	HaggleBonusRate = 0.2
	// HaggleFailReputationPenalty applies on a lost haggle
	HaggleFailReputationPenalty = 5
	// UrgentRewardMultiplier doubles urgent order rewards
	UrgentRewardMultiplier = 2
	// ReputationRewardDivisor derives reputation from the gold reward
	ReputationRewardDivisor = 10
)

// orderQualityBonuses grades the delivered item's quality into match score,
// monotonic with quality rank
var orderQualityBonuses = map[Quality]int{
	QualityPoor:      -10,
	QualityCommon:    0,
	QualityUncommon:  5,
	QualityRare:      10,
	QualityEpic:      20,
	QualityLegendary: 30,
	QualityMythic:    50,
}

// OrderQualityBonus returns the match-score adjustment for a delivered
// item's quality
func OrderQualityBonus(q Quality) int {
	return orderQualityBonuses[q]
}

// Mine policy
const (
	// WeaponDecayOnVictory wears the weapon when a monster falls
	WeaponDecayOnVictory = 2
	// ArmorDecayOnHit wears the armor when the player is struck
	ArmorDecayOnHit = 1
	// WeaponDecayOnMining wears the weapon during a mine action
	WeaponDecayOnMining = 3
	// MonsterRespawnDelaySeconds schedules the next spawn after mining
	MonsterRespawnDelaySeconds = 2
	// UnarmedAttack is the player's attack with an empty weapon slot
	UnarmedAttack = 5
)

// Event policy
const (
	// EventCooldownSeconds is the tick interval between random events
	EventCooldownSeconds = 60
	// EventDrawCount is how many cards an event offers
	EventDrawCount = 3
)

// CardRarityWeights drive the weighted draw: common 60%, rare 30%, epic 10%
var CardRarityWeights = map[CardRarity]float64{
	CardCommon: 0.6,
	CardRare:   0.3,
	CardEpic:   0.1,
}

// Expedition policy
const (
	ExpeditionRollsMin        = 2
	ExpeditionRollsMax        = 4
	ExpeditionPickQuantityMin = 1
	ExpeditionPickQuantityMax = 2
)
