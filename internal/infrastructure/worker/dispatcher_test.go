package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type dropCounter struct{ n atomic.Int32 }

func (d *dropCounter) WebhookDropped() { d.n.Add(1) }

func TestDispatcher_ProcessesAndDrains(t *testing.T) {
	var mu sync.Mutex
	seen := map[int]bool{}
	d, err := NewDispatcher(func(_ context.Context, job int) {
		mu.Lock()
		seen[job] = true
		mu.Unlock()
	}, Options{Workers: 2, QueueSize: 10}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d.Start()

	for i := 0; i < 5; i++ {
		if !d.Submit(i) {
			t.Fatalf("submit %d rejected", i)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := d.Stop(ctx); err != nil {
		t.Fatalf("unexpected stop error: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(seen) != 5 {
		t.Fatalf("expected 5 jobs processed, got %d", len(seen))
	}
	if d.Submit(99) {
		t.Fatalf("expected submit after stop to be rejected")
	}
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 1)
	drops := &dropCounter{}

	d, _ := NewDispatcher(func(_ context.Context, _ string) {
		started <- struct{}{}
		<-release
	}, Options{Workers: 1, QueueSize: 1}, drops, nil)
	d.Start()

	if !d.Submit("a") {
		t.Fatalf("first submit rejected")
	}
	<-started
	if !d.Submit("b") {
		t.Fatalf("second submit should fill the queue")
	}
	if d.Submit("c") {
		t.Fatalf("third submit should be dropped")
	}
	if drops.n.Load() != 1 {
		t.Fatalf("expected 1 drop, got %d", drops.n.Load())
	}

	close(release)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := d.Stop(ctx); err != nil {
		t.Fatalf("unexpected stop error: %v", err)
	}
}

func TestDispatcher_RecoversPanicsAndAppliesTimeout(t *testing.T) {
	deadlines := make(chan bool, 2)
	d, _ := NewDispatcher(func(ctx context.Context, job int) {
		_, ok := ctx.Deadline()
		deadlines <- ok
		if job == 0 {
			panic("boom")
		}
	}, Options{Workers: 1, QueueSize: 2, JobTimeout: time.Second}, nil, nil)
	d.Start()

	d.Submit(0)
	d.Submit(1)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := d.Stop(ctx); err != nil {
		t.Fatalf("unexpected stop error: %v", err)
	}
	for i := 0; i < 2; i++ {
		if !<-deadlines {
			t.Fatalf("expected job %d to run with a deadline", i)
		}
	}
}
