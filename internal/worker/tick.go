package worker

import (
	"context"

	"github.com/forgeline/LegendaryForge_Go/internal/game"
	"github.com/forgeline/LegendaryForge_Go/internal/logger"
)

// TickJob drives the engine's once-per-second tick. The scheduler owns the
// cadence; this job only reports what the tick surfaced.
type TickJob struct {
	Engine *game.Engine
}

// NewTickJob creates the tick job for the given engine
func NewTickJob(engine *game.Engine) *TickJob {
	return &TickJob{Engine: engine}
}

// Process advances the engine by one tick
func (j *TickJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	report := j.Engine.TickSecond()

	if report.EventReady {
		log.Info(LogMsgEventCardsReady, "count", len(report.Cards))
	}
	if len(report.ExpiredOrders) > 0 {
		log.Info(LogMsgOrdersExpired, "count", len(report.ExpiredOrders))
	}
	for _, result := range report.ExpeditionResults {
		log.Info(LogMsgExpeditionReturned,
			"map_type", result.Expedition.MapType,
			"rewards", len(result.Rewards),
			"overflow", len(result.Overflow))
	}
	if len(report.ExpiredEffects) > 0 {
		log.Debug(LogMsgEffectsExpired, "count", len(report.ExpiredEffects))
	}
	return nil
}
