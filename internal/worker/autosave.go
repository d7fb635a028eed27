package worker

import (
	"context"
	"fmt"

	"github.com/forgeline/LegendaryForge_Go/internal/save"
)

// AutosaveJob periodically persists the game through the save service
type AutosaveJob struct {
	Saver save.Service
}

// NewAutosaveJob creates the autosave job
func NewAutosaveJob(saver save.Service) *AutosaveJob {
	return &AutosaveJob{Saver: saver}
}

// Process writes one save. Errors surface to the pool's error log so a
// broken save store is visible without killing the game loop.
func (j *AutosaveJob) Process(ctx context.Context) error {
	if err := j.Saver.Save(ctx); err != nil {
		return fmt.Errorf("%s: %w", LogMsgAutosaveFailed, err)
	}
	return nil
}
