package entity

import "time"

// Estados de una ejecución del ETL.
const (
	ETLRunRunning   = "running"
	ETLRunSucceeded = "succeeded"
	ETLRunFailed    = "failed"
)

// ETLRun registro de auditoría de una ejecución Extract → Transform → Load.
type ETLRun struct {
	ID          string
	Source      string
	Status      string
	Extracted   int
	Transformed int
	Loaded      int
	Error       string
	StartedAt   time.Time
	FinishedAt  time.Time
}

// Failed indica si la ejecución terminó con error.
func (r *ETLRun) Failed() bool {
	return r.Status == ETLRunFailed
}
