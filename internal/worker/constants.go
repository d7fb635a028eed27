package worker

// Log Messages - Worker Pool
const LogMsgWorkerJobFailed = "Worker job failed"

// Log Messages - Tick Job
const (
	LogMsgEventCardsReady    = "Event cards ready for selection"
	LogMsgOrdersExpired      = "Orders expired"
	LogMsgExpeditionReturned = "Expedition returned"
	LogMsgEffectsExpired     = "Active effects expired"
)

// Log Messages - Autosave Job
const LogMsgAutosaveFailed = "Autosave failed"

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
