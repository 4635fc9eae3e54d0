package event

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/osse101/CasinoBot_Go/internal/logger"
)

// DeadLetter is one line of the dead-letter log: an event the bus never accepted
type DeadLetter struct {
	Format    string    `json:"format"`
	WrittenAt time.Time `json:"written_at"`
	Event     Event     `json:"event"`
	Attempts  int       `json:"attempts"`
	LastError string    `json:"last_error,omitempty"`
}

// DeadLetterWriter appends undeliverable events to a JSON-lines file
type DeadLetterWriter struct {
	mu   sync.Mutex
	file *os.File
	enc  *json.Encoder
}

// NewDeadLetterWriter opens (or creates) the log at path for appending
func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("open dead-letter log %s: %w", path, err)
	}
	return &DeadLetterWriter{file: f, enc: json.NewEncoder(f)}, nil
}

// Write appends evt after attempts failed deliveries
func (w *DeadLetterWriter) Write(evt Event, attempts int, cause error) error {
	line := DeadLetter{
		Format:    DeadLetterFormat,
		WrittenAt: time.Now().UTC(),
		Event:     evt,
		Attempts:  attempts,
	}
	if cause != nil {
		line.LastError = cause.Error()
	}

	logger.Warn(LogMsgEventDeadLettered, "event_type", evt.Type, "attempts", attempts, "error", cause)

	w.mu.Lock()
	defer w.mu.Unlock()
	return w.enc.Encode(line)
}

// Close flushes and closes the log
func (w *DeadLetterWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return errors.Join(w.file.Sync(), w.file.Close())
}

// ReadDeadLetters loads every entry of a dead-letter log
func ReadDeadLetters(path string) ([]DeadLetter, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []DeadLetter
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		if len(sc.Bytes()) == 0 {
			continue
		}
		var dl DeadLetter
		if err := json.Unmarshal(sc.Bytes(), &dl); err != nil {
			return out, fmt.Errorf("dead-letter line %d: %w", len(out)+1, err)
		}
		out = append(out, dl)
	}
	return out, sc.Err()
}
