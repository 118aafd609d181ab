package pipeline

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dgallion1/refnote/internal/config"
)

func TestOrchestrator_Lifecycle(t *testing.T) {
	cfg := config.Config{WorkerCount: 2, MaxQueueSize: 4, JobTTL: time.Hour}
	o := NewOrchestrator(cfg, testLogger())
	o.Start(context.Background())

	job := newTestJob("doc.txt", []byte("read [the fine manual] first"))
	if err := o.Submit(job); err != nil {
		t.Fatalf("unexpected submit error: %v", err)
	}
	if o.GetJob(job.ID) == nil {
		t.Fatal("expected job to be registered")
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		snap := job.Snapshot()
		if snap.Status == StatusCompleted {
			break
		}
		if snap.Status == StatusFailed {
			t.Fatalf("job failed: %v", snap.Errors)
		}
		if time.Now().After(deadline) {
			t.Fatalf("job did not complete, status %q", snap.Status)
		}
		time.Sleep(10 * time.Millisecond)
	}

	result, ok := job.Result()
	if !ok || !strings.Contains(result, "[1] the fine manual") {
		t.Errorf("unexpected result %q", result)
	}

	o.Stop()
}

func TestOrchestrator_QueueFull(t *testing.T) {
	cfg := config.Config{WorkerCount: 1, MaxQueueSize: 1, JobTTL: time.Hour}
	// Not started: nothing drains the queue.
	o := NewOrchestrator(cfg, testLogger())

	if err := o.Submit(newTestJob("a.txt", []byte("x"))); err != nil {
		t.Fatalf("unexpected submit error: %v", err)
	}

	overflow := newTestJob("b.txt", []byte("y"))
	if err := o.Submit(overflow); err == nil {
		t.Fatal("expected queue-full error")
	}
	if overflow.Snapshot().Status != StatusFailed {
		t.Errorf("expected overflow job marked failed, got %q", overflow.Snapshot().Status)
	}
}
