package game

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Recorder writes per-tick snapshots to a jsonl file in the background,
// so recording never blocks the tick loop.
type Recorder struct {
	file       *os.File
	writer     *bufio.Writer
	recordChan chan Snapshot
	wg         sync.WaitGroup
	mu         sync.Mutex
	closed     bool
	logger     *log.Logger
}

// NewRecorder creates a recorder writing to dir. Filename format:
// session_{id}_{timestamp}.jsonl, with a fresh random session id.
func NewRecorder(dir string, logger *log.Logger) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create record dir: %w", err)
	}

	sessionID := uuid.NewString()
	filename := fmt.Sprintf("session_%s_%d.jsonl", sessionID, time.Now().Unix())
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create record file: %w", err)
	}

	r := &Recorder{
		file:       f,
		writer:     bufio.NewWriter(f),
		recordChan: make(chan Snapshot, 1000),
		logger:     logger,
	}

	r.wg.Add(1)
	go r.writeLoop()

	if logger != nil {
		logger.Printf("recording session to %s", path)
	}
	return r, nil
}

// Record queues a snapshot to be written. Non-blocking; drops the frame
// if the writer is behind. Safe to call concurrently with Close.
func (r *Recorder) Record(snap Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}

	// Send under the lock so Close cannot close the channel mid-send.
	select {
	case r.recordChan <- snap:
	default:
		// Writer can't keep up; losing a frame beats stalling the tick.
	}
}

// Close flushes the buffer and closes the file.
func (r *Recorder) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.mu.Unlock()

	close(r.recordChan)
	r.wg.Wait()
	r.file.Close()
}

func (r *Recorder) writeLoop() {
	defer r.wg.Done()

	encoder := json.NewEncoder(r.writer)
	for snap := range r.recordChan {
		if err := encoder.Encode(snap); err != nil {
			if r.logger != nil {
				r.logger.Printf("error recording tick %d: %v", snap.Tick, err)
			}
			continue
		}
	}
	r.writer.Flush()
}
