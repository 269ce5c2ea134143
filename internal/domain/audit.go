package domain

import (
	"context"
	"time"
)

// ErrorRecord is persisted to the error-audit collection whenever an
// unexpected persistence or cache failure is recovered at a flow boundary.
type ErrorRecord struct {
	Level     string
	Message   string
	Code      int
	Timestamp time.Time
}

type ErrorAuditRepository interface {
	Save(ctx context.Context, rec *ErrorRecord) error
}

// ErrorRecorder accepts audit records without blocking the caller.
type ErrorRecorder interface {
	Record(rec ErrorRecord)
}
