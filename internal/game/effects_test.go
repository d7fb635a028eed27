package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeline/LegendaryForge_Go/internal/content"
	"github.com/forgeline/LegendaryForge_Go/internal/domain"
)

// singleCardCatalog narrows the card pool to one card so ChooseCard tests
// know exactly what the draw offers
func singleCardCatalog(card domain.EventCard) *content.Catalog {
	cat := testCatalog()
	cat.Cards = []domain.EventCard{card}
	return cat
}

// tickUntilEvent ticks the engine up to one full cooldown and returns the
// offered cards
func tickUntilEvent(t *testing.T, engine *Engine) []domain.EventCard {
	t.Helper()
	for i := 0; i < domain.EventCooldownSeconds; i++ {
		if report := engine.TickSecond(); report.EventReady {
			return report.Cards
		}
	}
	t.Fatal("no event fired within one cooldown")
	return nil
}

func TestTickSecond_EventFiresAfterCooldown(t *testing.T) {
	engine := newTestEngine(t)

	for i := 0; i < domain.EventCooldownSeconds-1; i++ {
		report := engine.TickSecond()
		require.False(t, report.EventReady)
	}

	report := engine.TickSecond()
	require.True(t, report.EventReady)
	require.Len(t, report.Cards, domain.EventDrawCount)

	seen := map[string]bool{}
	for _, c := range report.Cards {
		assert.False(t, seen[c.ID], "draws must not repeat a card")
		seen[c.ID] = true
	}
	assert.Len(t, engine.PendingCards(), domain.EventDrawCount)
}

func TestTickSecond_CooldownPausesWhileEventPending(t *testing.T) {
	engine := newTestEngine(t)
	tickUntilEvent(t, engine)

	for i := 0; i < 2*domain.EventCooldownSeconds; i++ {
		report := engine.TickSecond()
		assert.False(t, report.EventReady, "no new event while one is waiting on the player")
	}

	engine.DismissEvent()
	assert.Nil(t, engine.PendingCards())
	tickUntilEvent(t, engine)
}

func TestChooseCard_NoEventPending(t *testing.T) {
	engine := newTestEngine(t)
	assert.ErrorIs(t, engine.ChooseCard("gold_pouch"), domain.ErrNoEventPending)
}

func TestChooseCard_NotOffered(t *testing.T) {
	engine := newTestEngine(t)
	tickUntilEvent(t, engine)
	assert.ErrorIs(t, engine.ChooseCard("no_such_card"), domain.ErrCardNotOffered)
}

func TestChooseCard_GoldBonusPaysImmediately(t *testing.T) {
	cat := singleCardCatalog(domain.EventCard{
		ID: "gold_pouch", Name: "Gold Pouch", Rarity: domain.CardCommon,
		EffectType: domain.EffectGoldBonus, EffectValue: 50,
	})
	engine := New(cat, WithSeed(42))
	tickUntilEvent(t, engine)
	before := engine.Gold()

	require.NoError(t, engine.ChooseCard("gold_pouch"))

	assert.Equal(t, before+50, engine.Gold())
	assert.Nil(t, engine.PendingCards())
	assert.False(t, engine.HasActiveEffect(domain.EffectGoldBonus),
		"a payout card never lingers as an active effect")
}

func TestChooseCard_UsageLimitedEffect(t *testing.T) {
	cat := singleCardCatalog(domain.EventCard{
		ID: "masters_touch", Name: "Master's Touch", Rarity: domain.CardRare,
		EffectType: domain.EffectQualityBoost, EffectValue: 15, Usage: 1,
	})
	engine := New(cat, WithSeed(42))
	tickUntilEvent(t, engine)

	require.NoError(t, engine.ChooseCard("masters_touch"))

	effect, ok := engine.ActiveEffect(domain.EffectQualityBoost)
	require.True(t, ok)
	assert.Equal(t, 15.0, effect.Value)
	require.NotNil(t, effect.RemainingUsage)
	assert.Equal(t, 1, *effect.RemainingUsage)

	_, ok = engine.ConsumeEffect(domain.EffectQualityBoost)
	require.True(t, ok)
	assert.False(t, engine.HasActiveEffect(domain.EffectQualityBoost))
}

func TestChooseCard_DurationEffectExpiresByTicks(t *testing.T) {
	cat := singleCardCatalog(domain.EventCard{
		ID: "generous_patron", Name: "Generous Patron", Rarity: domain.CardEpic,
		EffectType: domain.EffectOrderReward, EffectValue: 0.5, Duration: 10,
	})
	engine := New(cat, WithSeed(42))
	tickUntilEvent(t, engine)
	require.NoError(t, engine.ChooseCard("generous_patron"))
	require.True(t, engine.HasActiveEffect(domain.EffectOrderReward))

	var expired []domain.EffectType
	for i := 0; i < 10; i++ {
		report := engine.TickSecond()
		expired = append(expired, report.ExpiredEffects...)
	}

	assert.Contains(t, expired, domain.EffectOrderReward)
	assert.False(t, engine.HasActiveEffect(domain.EffectOrderReward))
}

func TestConsumeEffect_DecrementsUsage(t *testing.T) {
	usage := 2
	state := domain.NewGameState(testCatalog().Recipes)
	state.ActiveEffects = []domain.ActiveEffect{
		{Type: domain.EffectMaterialSave, Value: 0.5, RemainingUsage: &usage},
	}
	engine := New(testCatalog(), WithSeed(42), WithState(state))

	_, ok := engine.ConsumeEffect(domain.EffectMaterialSave)
	require.True(t, ok)
	assert.True(t, engine.HasActiveEffect(domain.EffectMaterialSave))

	_, ok = engine.ConsumeEffect(domain.EffectMaterialSave)
	require.True(t, ok)
	assert.False(t, engine.HasActiveEffect(domain.EffectMaterialSave))

	_, ok = engine.ConsumeEffect(domain.EffectMaterialSave)
	assert.False(t, ok)
}

func TestConsumeEffect_PermanentEffectNeverSpends(t *testing.T) {
	state := domain.NewGameState(testCatalog().Recipes)
	state.ActiveEffects = []domain.ActiveEffect{
		{Type: domain.EffectOrderReward, Value: 0.5},
	}
	engine := New(testCatalog(), WithSeed(42), WithState(state))

	for i := 0; i < 3; i++ {
		_, ok := engine.ConsumeEffect(domain.EffectOrderReward)
		require.True(t, ok)
	}
	assert.True(t, engine.HasActiveEffect(domain.EffectOrderReward))
}

func TestDismissEvent_NoPendingIsNoop(t *testing.T) {
	engine := newTestEngine(t)
	before := engine.Revision()
	engine.DismissEvent()
	assert.Equal(t, before, engine.Revision())
}
