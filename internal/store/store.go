// Package store persists session history under the repository's
// .timebox directory: a session log, a mood log, and a free-text note
// log. Appends are read-modify-rewrite over whole JSON arrays and are
// not safe against concurrent writers from two processes; this is an
// accepted limitation of a single-user, single-machine tool.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	sessionFile = "focus_log.json"
	moodFile    = "mood_log.json"
	notesFile   = "task_notes.txt"
)

// SessionRecord is one logged session recommendation. Immutable once
// appended.
type SessionRecord struct {
	Timestamp   time.Time `json:"timestamp"`
	Suggestion  string    `json:"suggestion"`
	Intensity   int       `json:"intensity"`
	SessionType string    `json:"session_type"`
}

// MoodRecord is one logged mood rating in [1,5]. Immutable once appended.
type MoodRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Mood      int       `json:"mood"`
}

// Store manages the on-disk session, mood, and note logs in dir.
type Store struct {
	dir string

	// Now is the clock for trend cutoffs and note timestamps; nil means
	// time.Now.
	Now func() time.Time
}

// New returns a Store rooted at dir. Call Init before first use.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Init creates dir and the two JSON logs as empty sequences when they
// do not exist yet. Safe to call on every startup.
func (s *Store) Init() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	for _, name := range []string{sessionFile, moodFile} {
		path := filepath.Join(s.dir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, []byte("[]\n"), 0o644); err != nil {
			return fmt.Errorf("init %s: %w", name, err)
		}
	}
	return nil
}

// AppendSession appends one session record to the session log.
func (s *Store) AppendSession(r SessionRecord) error {
	r.Timestamp = r.Timestamp.Truncate(time.Second)

	records, _ := s.Sessions()
	records = append(records, r)
	return s.writeJSON(sessionFile, records)
}

// AppendMood appends one mood record to the mood log.
func (s *Store) AppendMood(r MoodRecord) error {
	r.Timestamp = r.Timestamp.Truncate(time.Second)

	records, _ := s.Moods()
	records = append(records, r)
	return s.writeJSON(moodFile, records)
}

// Sessions loads all session records in insertion order. A missing or
// unparseable log reads as empty.
func (s *Store) Sessions() ([]SessionRecord, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, sessionFile))
	if err != nil {
		return nil, nil
	}
	var records []SessionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, nil
	}
	return records, nil
}

// Moods loads all mood records in insertion order. A missing or
// unparseable log reads as empty.
func (s *Store) Moods() ([]MoodRecord, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, moodFile))
	if err != nil {
		return nil, nil
	}
	var records []MoodRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, nil
	}
	return records, nil
}

// MoodTrend returns mood records with timestamps strictly after
// now - days, in insertion order (which is chronological because entries
// are always appended with the current time).
func (s *Store) MoodTrend(days int) ([]MoodRecord, error) {
	records, err := s.Moods()
	if err != nil {
		return nil, err
	}

	cutoff := s.now().AddDate(0, 0, -days)
	var recent []MoodRecord
	for _, r := range records {
		if r.Timestamp.After(cutoff) {
			recent = append(recent, r)
		}
	}
	return recent, nil
}

// AppendNote appends one timestamped line to the free-text note log.
// Identical texts are never deduplicated.
func (s *Store) AppendNote(text string) error {
	f, err := os.OpenFile(filepath.Join(s.dir, notesFile),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open notes: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("%s - %s\n", s.now().Format("2006-01-02 15:04:05"), text)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write note: %w", err)
	}
	return nil
}

// Files returns the paths of the store's on-disk artifacts that exist.
func (s *Store) Files() []string {
	var paths []string
	for _, name := range []string{sessionFile, moodFile, notesFile} {
		p := filepath.Join(s.dir, name)
		if _, err := os.Stat(p); err == nil {
			paths = append(paths, p)
		}
	}
	return paths
}

// Dir returns the store's root directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// writeJSON rewrites a whole JSON array.
func (s *Store) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
