package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/cityconnect/issue-reporting/internal/api/metrics"
	"github.com/cityconnect/issue-reporting/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes issue events to a fixed set of workers using consistent
// hashing on the issue ID, guaranteeing per-issue ordering in the activity
// trail. It implements ports.EventSink.
type Dispatcher struct {
	workers []chan ports.IssueEventInput
	service ports.ActivityService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ActivityService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.IssueEventInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.IssueEventInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record sends an event to the worker responsible for its issue.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Record(event ports.IssueEventInput) {
	d.workers[d.shardIndex(event.IssueID)] <- event
}

// shardIndex maps an issue ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(issueID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(issueID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.IssueEventInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Process(ctx, event); err != nil {
				metrics.ActivityEventsTotal.WithLabelValues(string(event.Type), "error").Inc()
				d.log.Error().Err(err).
					Str("issue_id", event.IssueID).
					Int("worker_id", id).
					Msg("activity event processing failed")
				continue
			}
			metrics.ActivityEventsTotal.WithLabelValues(string(event.Type), "ok").Inc()
		}
	}
}
