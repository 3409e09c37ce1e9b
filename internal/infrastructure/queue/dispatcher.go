package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/lionscafe/storefront/internal/api/metrics"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// ErrStopped is returned by Do once the dispatcher's workers have exited.
var ErrStopped = errors.New("order dispatcher stopped")

type job struct {
	ctx  context.Context
	fn   func(ctx context.Context) error
	done chan error
}

// Dispatcher routes order writes to a fixed set of workers using consistent
// hashing on the order id, so writes to one order run one at a time and in
// arrival order while different orders proceed in parallel.
type Dispatcher struct {
	workers []chan job
	stopped chan struct{}
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan job, numWorkers),
		stopped: make(chan struct{}),
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan job, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled;
// pending and later calls to Do then fail with ErrStopped.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
	go func() {
		<-ctx.Done()
		close(d.stopped)
	}()
}

// Do runs fn on the worker owning key and waits for it to finish. If ctx ends
// while the job is still waiting for a free slot, Do returns ctx's error and
// fn never runs. Once queued, Do reports the job's real result: fn's error, or
// ctx's error if the worker dequeued it after cancellation and skipped it.
// ErrStopped is returned when the workers shut down first.
func (d *Dispatcher) Do(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	idx := d.shardIndex(key)
	j := job{ctx: ctx, fn: fn, done: make(chan error, 1)}

	select {
	case d.workers[idx] <- j:
		metrics.OrderQueueDepth.WithLabelValues(strconv.Itoa(idx)).Inc()
	case <-d.stopped:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-j.done:
		return err
	case <-d.stopped:
		return ErrStopped
	}
}

// shardIndex maps an order id deterministically to a worker index.
func (d *Dispatcher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan job) {
	depth := metrics.OrderQueueDepth.WithLabelValues(strconv.Itoa(id))
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-ch:
			depth.Dec()
			if err := j.ctx.Err(); err != nil {
				j.done <- err
				continue
			}
			err := j.fn(j.ctx)
			if err != nil {
				d.log.Debug().Err(err).Int("worker_id", id).Msg("order write failed")
			}
			j.done <- err
		}
	}
}
