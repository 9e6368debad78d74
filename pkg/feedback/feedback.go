// Package feedback implements the append-only CSV feedback log.
package feedback

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/google/renameio/v2"

	"github.com/moodshop/moodshop/pkg/domain"
)

// csv columns, fixed schema
var header = []string{"timestamp", "detected_emotion", "confidence", "rating", "feedback_text", "num_recommendations"}

// Log owns the feedback store. Records are append-only: nothing is ever
// mutated or deleted. The read-modify-rewrite cycle assumes a single writer,
// enforced in-process by the mutex.
type Log struct {
	path string
	mu   sync.Mutex

	now func() time.Time // injectable clock for tests
}

// NewLog creates a feedback log backed by the given CSV file
func NewLog(path string) *Log {
	return &Log{path: path, now: time.Now}
}

// EnsureExists creates the backing file with the fixed schema if absent.
// Idempotent, never overwrites existing data.
func (l *Log) EnsureExists() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := os.Stat(l.path); err == nil {
		return nil
	}

	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create feedback dir: %w", err)
		}
	}
	if err := l.writeLocked(nil); err != nil {
		return fmt.Errorf("create feedback file: %w", err)
	}
	log.Printf("[INFO] created feedback log at %s", l.path)
	return nil
}

// Append validates and stores a feedback record, stamping the timestamp at
// call time (UTC). Validation failures return domain.ErrValidation wrapped
// with the reason; prior records are never lost on rejection.
func (l *Log) Append(rec domain.Record) error {
	if rec.Rating < 1 || rec.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5, got %d", domain.ErrValidation, rec.Rating)
	}
	if rec.Confidence < 0 || rec.Confidence > 1 {
		return fmt.Errorf("%w: confidence must be between 0 and 1, got %v", domain.ErrValidation, rec.Confidence)
	}
	if rec.NumRecommendations < 0 {
		return fmt.Errorf("%w: num_recommendations must be non-negative", domain.ErrValidation)
	}

	rec.Timestamp = l.now().UTC().Format(time.RFC3339)
	rec.DetectedEmotion = domain.NormalizeEmotion(rec.DetectedEmotion)

	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.readLocked()
	if err != nil {
		// missing or unreadable log is recreated from scratch
		log.Printf("[WARN] can't read feedback log, starting fresh: %v", err)
		records = nil
	}
	records = append(records, rec)

	if err := l.writeLocked(records); err != nil {
		return fmt.Errorf("persist feedback: %w", err)
	}
	log.Printf("[INFO] logged feedback: %s - rating %d", rec.DetectedEmotion, rec.Rating)
	return nil
}

// Summarize aggregates the log. Returns (nil, nil) when the log is empty or
// absent; malformed rows are skipped with a warning, never an error.
func (l *Log) Summarize() (*domain.Summary, error) {
	l.mu.Lock()
	records, err := l.readLocked()
	l.mu.Unlock()
	if err != nil || len(records) == 0 {
		return nil, nil
	}

	summary := &domain.Summary{
		TotalFeedback:       len(records),
		EmotionDistribution: make(map[string]int),
	}

	ratingSum := 0
	confSum := 0.0
	summary.ConfidenceStats.Min = records[0].Confidence
	summary.ConfidenceStats.Max = records[0].Confidence

	for _, rec := range records {
		ratingSum += rec.Rating
		confSum += rec.Confidence
		summary.EmotionDistribution[rec.DetectedEmotion]++
		if rec.Confidence < summary.ConfidenceStats.Min {
			summary.ConfidenceStats.Min = rec.Confidence
		}
		if rec.Confidence > summary.ConfidenceStats.Max {
			summary.ConfidenceStats.Max = rec.Confidence
		}
	}

	summary.AverageRating = float64(ratingSum) / float64(len(records))
	summary.ConfidenceStats.Mean = confSum / float64(len(records))
	return summary, nil
}

// readLocked parses all records, caller holds the lock
func (l *Log) readLocked() ([]domain.Record, error) {
	f, err := os.Open(l.path) //nolint:gosec // path comes from config
	if err != nil {
		return nil, fmt.Errorf("open feedback file: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read feedback file: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	records := make([]domain.Record, 0, len(rows)-1)
	for i, row := range rows[1:] { // skip header
		rec, err := parseRow(row)
		if err != nil {
			log.Printf("[WARN] skipping malformed feedback row %d: %v", i+2, err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRow(row []string) (domain.Record, error) {
	if len(row) != len(header) {
		return domain.Record{}, fmt.Errorf("expected %d columns, got %d", len(header), len(row))
	}

	confidence, err := strconv.ParseFloat(row[2], 64)
	if err != nil {
		return domain.Record{}, fmt.Errorf("parse confidence %q: %w", row[2], err)
	}
	rating, err := strconv.Atoi(row[3])
	if err != nil {
		return domain.Record{}, fmt.Errorf("parse rating %q: %w", row[3], err)
	}
	numRecs, err := strconv.Atoi(row[5])
	if err != nil {
		return domain.Record{}, fmt.Errorf("parse num_recommendations %q: %w", row[5], err)
	}

	return domain.Record{
		Timestamp:          row[0],
		DetectedEmotion:    row[1],
		Confidence:         confidence,
		Rating:             rating,
		FeedbackText:       row[4],
		NumRecommendations: numRecs,
	}, nil
}

// writeLocked rewrites the full log atomically, caller holds the lock
func (l *Log) writeLocked(records []domain.Record) error {
	pending, err := renameio.NewPendingFile(l.path)
	if err != nil {
		return fmt.Errorf("create pending feedback file: %w", err)
	}
	defer pending.Cleanup() //nolint:errcheck // cleanup is a no-op after replace

	writer := csv.NewWriter(pending)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write feedback header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.Timestamp,
			rec.DetectedEmotion,
			strconv.FormatFloat(rec.Confidence, 'f', -1, 64),
			strconv.Itoa(rec.Rating),
			rec.FeedbackText,
			strconv.Itoa(rec.NumRecommendations),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write feedback row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush feedback rows: %w", err)
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace feedback file: %w", err)
	}
	return nil
}
