package game

import (
	"github.com/google/uuid"

	"github.com/forgeline/LegendaryForge_Go/internal/domain"
	"github.com/forgeline/LegendaryForge_Go/internal/naming"
)

// Staff returns a copy of the hired roster
func (e *Engine) Staff() []domain.HiredNPC {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]domain.HiredNPC(nil), e.state.HiredNPCs...)
}

// HireNPC rolls a new staff member from the quality tier's pool, deducting
// the tier's hire cost. Fails without mutation when the roster is full or
// funds are short.
func (e *Engine) HireNPC(quality domain.Quality) (domain.HiredNPC, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	pool, ok := e.catalog.NPCPool(quality)
	if !ok {
		return domain.HiredNPC{}, domain.ErrNPCNotFound
	}
	if len(e.state.HiredNPCs) >= e.state.MaxHiredNPCs {
		return domain.HiredNPC{}, domain.ErrRosterFull
	}
	if err := e.spendGoldLocked(pool.HireCost); err != nil {
		return domain.HiredNPC{}, err
	}

	profession := pool.Professions[e.rollInt(0, len(pool.Professions)-1)]
	npc := domain.HiredNPC{
		ID:              domain.NewNPCID(),
		Name:            naming.DisplayName(pool.Names[e.rollInt(0, len(pool.Names)-1)]),
		Profession:      profession,
		Quality:         quality,
		Bonus:           pool.Bonuses[e.rollInt(0, len(pool.Bonuses)-1)],
		BonusValue:      pool.BonusValueMin + e.rollFloat()*(pool.BonusValueMax-pool.BonusValueMin),
		Salary:          e.rollInt(pool.SalaryMin, pool.SalaryMax),
		ExperienceLevel: 1,
		AvatarSeed:      e.rng.Int63(),
	}

	e.state.HiredNPCs = append(e.state.HiredNPCs, npc)
	e.touch()
	return npc, nil
}

// FireNPC removes a staff member. Unknown ids are a no-op.
func (e *Engine) FireNPC(id uuid.UUID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, npc := range e.state.HiredNPCs {
		if npc.ID == id {
			e.state.HiredNPCs = append(e.state.HiredNPCs[:i], e.state.HiredNPCs[i+1:]...)
			e.touch()
			return
		}
	}
}

// UpgradeNPCExperience raises a staff member's experience level, capped at
// the maximum
func (e *Engine) UpgradeNPCExperience(id uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.state.HiredNPCs {
		if e.state.HiredNPCs[i].ID == id {
			if e.state.HiredNPCs[i].ExperienceLevel < domain.MaxNPCExperience {
				e.state.HiredNPCs[i].ExperienceLevel++
				e.touch()
			}
			return nil
		}
	}
	return domain.ErrNPCNotFound
}

// BonusTotal aggregates a passive bonus kind across the whole roster, in
// percentage points. The roster only stores bonuses; consuming subsystems
// call this when computing effective rates.
func (e *Engine) BonusTotal(kind domain.NPCBonus) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.bonusTotalLocked(kind)
}

func (e *Engine) bonusTotalLocked(kind domain.NPCBonus) float64 {
	total := 0.0
	for i := range e.state.HiredNPCs {
		if e.state.HiredNPCs[i].Bonus == kind {
			total += e.state.HiredNPCs[i].EffectiveBonus()
		}
	}
	return total
}

// EffectiveForgeSpeed folds staff speed bonuses into the upgrade-driven
// forge speed. The presentation layer uses this to pace the minigame.
func (e *Engine) EffectiveForgeSpeed() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.ForgeSpeed * (1 + e.bonusTotalLocked(domain.BonusForgeSpeed)/100)
}
