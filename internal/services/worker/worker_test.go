package worker

import (
	"fmt"
	"sync"
	"testing"
)

func TestStopDrainsQueuedJobs(t *testing.T) {
	p := NewPool(2, 10, nil, nil, nil)

	var mu sync.Mutex
	var processed []string
	p.process = func(job Job) error {
		mu.Lock()
		processed = append(processed, job.SessionID)
		mu.Unlock()
		return nil
	}

	for i := 0; i < 5; i++ {
		if err := p.Submit(Job{SessionID: fmt.Sprintf("session-%d", i)}); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
	}

	p.Start()
	p.Stop() // must not return until every accepted job has run

	mu.Lock()
	defer mu.Unlock()
	if len(processed) != 5 {
		t.Errorf("processed %d jobs before shutdown, want 5: %v", len(processed), processed)
	}
}

func TestQueueSize(t *testing.T) {
	p := NewPool(1, 10, nil, nil, nil)
	// Workers not started, so submitted jobs sit in the queue.

	if got := p.QueueSize(); got != 0 {
		t.Fatalf("QueueSize() = %d on a fresh pool, want 0", got)
	}

	for i := 0; i < 3; i++ {
		if err := p.Submit(Job{SessionID: fmt.Sprintf("session-%d", i)}); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
	}

	if got := p.QueueSize(); got != 3 {
		t.Errorf("QueueSize() = %d, want 3", got)
	}
}

func TestSubmitFullQueue(t *testing.T) {
	p := NewPool(1, 2, nil, nil, nil)
	// Workers not started, so the buffer is the whole capacity.

	for i := 0; i < 2; i++ {
		if err := p.Submit(Job{SessionID: fmt.Sprintf("session-%d", i)}); err != nil {
			t.Fatalf("Submit %d failed: %v", i, err)
		}
	}

	if err := p.Submit(Job{SessionID: "overflow"}); err == nil {
		t.Error("Submit on a full queue should fail instead of blocking")
	}
}
