package queue

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/rs/zerolog"

	"github.com/altosdelparque/residential-system/internal/api/metrics"
	"github.com/altosdelparque/residential-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher fans notifications out to a fixed set of workers using consistent
// hashing on the recipient, guaranteeing per-recipient delivery ordering.
// Business handlers only pay the cost of a buffered channel send.
type Dispatcher struct {
	workers []chan ports.NotificationInput
	service ports.NotificationService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.NotificationService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.NotificationInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.NotificationInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a notification to the worker responsible for its recipient.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(input ports.NotificationInput) {
	d.workers[d.shardIndex(input)] <- input
}

// shardIndex maps a notification deterministically to a worker index.
// Broadcasts shard on the recipient type so they stay ordered among themselves.
func (d *Dispatcher) shardIndex(input ports.NotificationInput) int {
	key := input.RecipientID
	if key == "" {
		key = string(input.RecipientType)
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.NotificationInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case input, ok := <-ch:
			if !ok {
				return
			}
			start := time.Now()
			if err := d.service.Dispatch(ctx, input); err != nil {
				metrics.NotificationsErrorsTotal.Inc()
				d.log.Error().Err(err).
					Str("type", string(input.Type)).
					Int("worker_id", id).
					Msg("notification dispatch failed")
				continue
			}
			metrics.NotificationDispatchDuration.Observe(time.Since(start).Seconds())
		}
	}
}
