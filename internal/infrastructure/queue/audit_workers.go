package queue

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/domain"
)

// ErrorAuditPool drains recovered-failure records into the audit
// collection off the request path. A full queue drops the record rather
// than blocking a handler.
type ErrorAuditPool struct {
	workerCounts int
	JobQueue     chan domain.ErrorRecord
	Ctx          context.Context
	CancelFunc   context.CancelFunc
	Wg           *sync.WaitGroup
	Repo         domain.ErrorAuditRepository
	Logger       domain.LoggingRepository
}

func NewErrorAuditPool(ctx context.Context, workercounts, queuesize int, repo domain.ErrorAuditRepository, logger domain.LoggingRepository) *ErrorAuditPool {
	ctx, cancelFunc := context.WithCancel(ctx)

	return &ErrorAuditPool{
		workerCounts: workercounts,
		JobQueue:     make(chan domain.ErrorRecord, queuesize),
		Ctx:          ctx,
		CancelFunc:   cancelFunc,
		Wg:           &sync.WaitGroup{},
		Repo:         repo,
		Logger:       logger,
	}
}

var _ domain.ErrorRecorder = (*ErrorAuditPool)(nil)

// Record enqueues without blocking. Audit records are best effort.
func (wp *ErrorAuditPool) Record(rec domain.ErrorRecord) {
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}
	select {
	case wp.JobQueue <- rec:
	default:
		wp.Logger.Warn("error_audit_pool", "reason", "queue_full_record_dropped")
	}
}

func (wp *ErrorAuditPool) processJob(workerid int) {
	go func() {
		start := time.Now()
		log := wp.Logger.With("service", "error_audit_pool", "worker_id", workerid)
		log.Info("error_audit_worker_started")
		defer func() {
			if r := recover(); r != nil {
				log.Error("error_audit_worker_paniced", "reason", fmt.Sprintf("%v", r))
			}
		}()

		for {
			select {
			case <-wp.Ctx.Done():
				log.Warn("error_audit_pool", "reason", "worker_exited_context_canceled", "duration_us", int(time.Since(start).Microseconds()))
				return
			case rec, ok := <-wp.JobQueue:
				if !ok {
					log.Warn("error_audit_pool", "reason", "worker_exited_job_queue_closed", "duration_us", int(time.Since(start).Microseconds()))
					return
				}
				wp.Wg.Add(1)
				func(rec domain.ErrorRecord) {
					defer wp.Wg.Done()
					saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					if err := wp.Repo.Save(saveCtx, &rec); err != nil {
						log.Error("error_audit_record_failed", "reason", err.Error())
					}
				}(rec)
			}
		}
	}()
}

func (wp *ErrorAuditPool) Start() {
	for i := 1; i <= wp.workerCounts; i++ {
		wp.processJob(i)
	}
}

func (wp *ErrorAuditPool) Cancel() {
	wp.CancelFunc()
}

func (wp *ErrorAuditPool) Wait() {
	wp.Wg.Wait()
}

func (wp *ErrorAuditPool) Close() {
	close(wp.JobQueue)
}
