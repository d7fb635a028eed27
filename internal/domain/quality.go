package domain

// Quality represents the visual tier and numeric grade of a crafted item
type Quality string

const (
	QualityPoor      Quality = "POOR"
	QualityCommon    Quality = "COMMON"
	QualityUncommon  Quality = "UNCOMMON"
	QualityRare      Quality = "RARE"
	QualityEpic      Quality = "EPIC"
	QualityLegendary Quality = "LEGENDARY"
	QualityMythic    Quality = "MYTHIC"
)

// qualityRanks orders qualities from worst to best for comparisons
var qualityRanks = map[Quality]int{
	QualityPoor:      0,
	QualityCommon:    1,
	QualityUncommon:  2,
	QualityRare:      3,
	QualityEpic:      4,
	QualityLegendary: 5,
	QualityMythic:    6,
}

// Rank returns the ordinal position of the quality, poor being 0.
// Unknown qualities rank as poor.
func (q Quality) Rank() int {
	if r, ok := qualityRanks[q]; ok {
		return r
	}
	return 0
}

// Valid reports whether q is a known quality level
func (q Quality) Valid() bool {
	_, ok := qualityRanks[q]
	return ok
}

// qualityThreshold maps a minimum crafting score to a quality level
type qualityThreshold struct {
	minScore float64
	quality  Quality
}

// qualityThresholds is checked in order from best to worst; first match wins.
// These cutoffs are a fixed gameplay policy and must not drift.
var qualityThresholds = []qualityThreshold{
	{95, QualityMythic},
	{85, QualityLegendary},
	{70, QualityEpic},
	{55, QualityRare},
	{40, QualityUncommon},
	{20, QualityCommon},
}

// QualityForScore maps a final crafting score to the resulting quality level
func QualityForScore(score float64) Quality {
	for _, qt := range qualityThresholds {
		if score >= qt.minScore {
			return qt.quality
		}
	}
	return QualityPoor
}

// StatMultiplier returns the factor applied to a recipe's base stats
// for equipment crafted at this quality
func (q Quality) StatMultiplier() float64 {
	switch q {
	case QualityLegendary, QualityMythic:
		return 1.5
	case QualityRare:
		return 1.2
	default:
		return 1.0
	}
}
