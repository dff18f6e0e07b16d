package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Handler processes one job. It must not block past ctx.
type Handler[T any] func(ctx context.Context, job T)

// DropRecorder is notified when a job is rejected by a full queue.
type DropRecorder interface {
	WebhookDropped()
}

type Options struct {
	Workers   int
	QueueSize int
	// JobTimeout bounds each job; zero disables the deadline.
	JobTimeout time.Duration
}

// Dispatcher runs jobs on a fixed pool of goroutines fed by a bounded queue.
// Jobs run on a context detached from the submitter.
type Dispatcher[T any] struct {
	handler Handler[T]
	opts    Options
	drops   DropRecorder
	logger  *zap.Logger

	mu     sync.RWMutex
	queue  chan T
	closed bool
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewDispatcher[T any](handler Handler[T], opts Options, drops DropRecorder, logger *zap.Logger) (*Dispatcher[T], error) {
	if handler == nil {
		return nil, fmt.Errorf("worker handler is required")
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.QueueSize < 0 {
		opts.QueueSize = 0
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher[T]{
		handler: handler,
		opts:    opts,
		drops:   drops,
		logger:  logger.Named("worker"),
		queue:   make(chan T, opts.QueueSize),
	}, nil
}

func (d *Dispatcher[T]) Start() {
	runCtx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel

	for i := 0; i < d.opts.Workers; i++ {
		workerID := i
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			d.loop(runCtx, workerID)
		}()
	}
	d.logger.Info("dispatcher started", zap.Int("workers", d.opts.Workers), zap.Int("queue_size", d.opts.QueueSize))
}

// Submit enqueues without blocking. It returns false when the queue is full
// or the dispatcher is stopped.
func (d *Dispatcher[T]) Submit(job T) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.logger.Warn("job rejected: dispatcher stopped")
		return false
	}

	select {
	case d.queue <- job:
		return true
	default:
		d.logger.Warn("job dropped: queue full", zap.Int("queue_size", d.opts.QueueSize))
		if d.drops != nil {
			d.drops.WebhookDropped()
		}
		return false
	}
}

// Stop closes the queue, lets workers drain it and waits until they finish or
// ctx expires, in which case in-flight jobs are cancelled.
func (d *Dispatcher[T]) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Info("dispatcher stopped")
		if d.cancel != nil {
			d.cancel()
		}
		return nil
	case <-ctx.Done():
		if d.cancel != nil {
			d.cancel()
		}
		return ctx.Err()
	}
}

func (d *Dispatcher[T]) loop(ctx context.Context, workerID int) {
	for job := range d.queue {
		d.run(ctx, workerID, job)
	}
}

func (d *Dispatcher[T]) run(ctx context.Context, workerID int, job T) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("job panicked", zap.Int("worker", workerID), zap.Any("panic", r))
		}
	}()

	if d.opts.JobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.opts.JobTimeout)
		defer cancel()
	}
	d.handler(ctx, job)
}
