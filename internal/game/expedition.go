package game

import (
	"time"

	"github.com/google/uuid"

	"github.com/forgeline/LegendaryForge_Go/internal/domain"
	"github.com/forgeline/LegendaryForge_Go/internal/metrics"
)

// DispatchExpedition pays the destination's cost up front and starts the
// clock. Rewards roll when the tick finds the duration elapsed.
func (e *Engine) DispatchExpedition(mapType string) (domain.Expedition, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	m, ok := e.catalog.ExpeditionMap(mapType)
	if !ok {
		return domain.Expedition{}, domain.ErrItemNotFound
	}
	if err := e.spendGoldLocked(m.Cost); err != nil {
		return domain.Expedition{}, err
	}

	exp := domain.Expedition{
		ID:            uuid.New(),
		MapType:       m.MapType,
		Duration:      time.Duration(m.DurationSeconds) * time.Second,
		StartTime:     e.now(),
		PossibleDrops: m.Drops,
		Cost:          m.Cost,
	}
	e.state.Expeditions = append(e.state.Expeditions, exp)
	metrics.ExpeditionsDispatched.WithLabelValues(m.MapType).Inc()
	e.touch()
	return exp, nil
}

// Expeditions returns a copy of the in-flight expedition list
func (e *Engine) Expeditions() []domain.Expedition {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]domain.Expedition, len(e.state.Expeditions))
	copy(out, e.state.Expeditions)
	return out
}

// completeExpeditionsLocked resolves every expedition whose duration has
// elapsed: 2-4 independent picks from the destination's drop list, picks of
// the same material accumulating 1-2 quantity each. Materials that cannot
// fit a full inventory are reported as overflow rather than silently lost.
func (e *Engine) completeExpeditionsLocked(now time.Time) []domain.ExpeditionResult {
	var results []domain.ExpeditionResult
	kept := e.state.Expeditions[:0]

	for _, exp := range e.state.Expeditions {
		if !exp.Complete(now) {
			kept = append(kept, exp)
			continue
		}
		results = append(results, e.rollExpeditionLocked(exp))
	}
	e.state.Expeditions = kept
	return results
}

func (e *Engine) rollExpeditionLocked(exp domain.Expedition) domain.ExpeditionResult {
	picks := e.rollInt(domain.ExpeditionRollsMin, domain.ExpeditionRollsMax)
	totals := make(map[domain.MaterialType]int, picks)
	var rollOrder []domain.MaterialType

	for i := 0; i < picks; i++ {
		drop := exp.PossibleDrops[e.rollInt(0, len(exp.PossibleDrops)-1)]
		if _, seen := totals[drop]; !seen {
			rollOrder = append(rollOrder, drop)
		}
		totals[drop] += e.rollInt(domain.ExpeditionPickQuantityMin, domain.ExpeditionPickQuantityMax)
	}

	result := domain.ExpeditionResult{Expedition: exp}
	for _, t := range rollOrder {
		reward := domain.ExpeditionReward{Type: t, Quantity: totals[t]}
		if e.addMaterialLocked(t, totals[t]) {
			result.Rewards = append(result.Rewards, reward)
		} else {
			result.Overflow = append(result.Overflow, reward)
		}
	}

	metrics.ExpeditionsCompleted.WithLabelValues(exp.MapType).Inc()
	return result
}
