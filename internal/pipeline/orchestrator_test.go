package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/dgallion1/papermeta/internal/docstore"
)

func TestOrchestratorProcessesSubmittedJob(t *testing.T) {
	store := docstore.New(time.Hour)
	o := NewOrchestrator(testConfig(), store, testLogger())
	o.Start(context.Background())
	defer o.Stop()

	job := newTestJob("doc-1", "paper.txt", paperText)
	if err := o.Submit(job); err != nil {
		t.Fatalf("submit: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		status := o.GetJob(job.ID).Snapshot().Status
		if status == StatusCompleted {
			break
		}
		if status == StatusFailed {
			t.Fatalf("job failed: %v", o.GetJob(job.ID).Snapshot().Progress.Errors)
		}
		if time.Now().After(deadline) {
			t.Fatalf("job stuck in %q", status)
		}
		time.Sleep(10 * time.Millisecond)
	}

	if _, ok := o.Store().Get("doc-1"); !ok {
		t.Error("no stored result after completion")
	}
	if o.Stats().Snapshot().Count == 0 {
		t.Error("latency sample not recorded")
	}
}

func TestSubmitFailsWhenQueueFull(t *testing.T) {
	cfg := testConfig()
	cfg.WorkerCount = 0 // nothing drains the queue
	cfg.MaxQueueSize = 1
	o := NewOrchestrator(cfg, docstore.New(time.Hour), testLogger())

	if err := o.Submit(newTestJob("doc-1", "a.txt", "x")); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	overflow := newTestJob("doc-2", "b.txt", "y")
	if err := o.Submit(overflow); err == nil {
		t.Fatal("expected queue-full error")
	}
	if overflow.Snapshot().Status != StatusFailed {
		t.Errorf("status = %q, want failed", overflow.Snapshot().Status)
	}
	if o.QueueDepth() != 1 {
		t.Errorf("queue depth = %d", o.QueueDepth())
	}
}

func TestGetJobUnknownID(t *testing.T) {
	o := NewOrchestrator(testConfig(), docstore.New(time.Hour), testLogger())
	if o.GetJob("nope") != nil {
		t.Error("expected nil for unknown job id")
	}
}
