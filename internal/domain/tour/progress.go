package tour

import (
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"github.com/felixgeelhaar/tourguide/internal/ports"
)

// Progress records what a user has done with each tour.
type Progress struct {
	Tours     map[string]*TourProgress `json:"tours"`
	UpdatedAt time.Time                `json:"updated_at"`
}

// TourProgress tracks one tour across runs.
type TourProgress struct {
	ID            string    `json:"id"`
	TotalSteps    int       `json:"total_steps"`
	SeenSteps     []int     `json:"seen_steps"`
	Runs          int       `json:"runs"`
	LastInstance  string    `json:"last_instance,omitempty"`
	StartedAt     time.Time `json:"started_at,omitempty"`
	CompletedAt   time.Time `json:"completed_at,omitempty"`
	DismissedAt   time.Time `json:"dismissed_at,omitempty"`
	DismissedStep int       `json:"dismissed_step,omitempty"`
}

// NewProgress creates an empty progress record.
func NewProgress() *Progress {
	return &Progress{
		Tours:     make(map[string]*TourProgress),
		UpdatedAt: time.Now(),
	}
}

// Get returns progress for a tour, or nil.
func (p *Progress) Get(tourID string) *TourProgress {
	return p.Tours[tourID]
}

// StartRun records a new activation of a tour.
func (p *Progress) StartRun(tourID, instanceID string, totalSteps int) {
	tp, ok := p.Tours[tourID]
	if !ok {
		tp = &TourProgress{ID: tourID, SeenSteps: []int{}, StartedAt: time.Now()}
		p.Tours[tourID] = tp
	}
	if instanceID != "" && tp.LastInstance == instanceID {
		return
	}
	tp.Runs++
	tp.LastInstance = instanceID
	if totalSteps > 0 {
		tp.TotalSteps = totalSteps
	}
	p.UpdatedAt = time.Now()
}

// MarkSeen records that a step was shown.
func (p *Progress) MarkSeen(tourID string, step int) {
	tp := p.Tours[tourID]
	if tp == nil || step < 0 {
		return
	}
	for _, s := range tp.SeenSteps {
		if s == step {
			return
		}
	}
	tp.SeenSteps = append(tp.SeenSteps, step)
	sort.Ints(tp.SeenSteps)
	p.UpdatedAt = time.Now()
}

// Complete marks a tour as completed.
func (p *Progress) Complete(tourID string) {
	tp := p.Tours[tourID]
	if tp == nil {
		return
	}
	tp.CompletedAt = time.Now()
	p.UpdatedAt = time.Now()
}

// Dismiss records where the user left a tour.
func (p *Progress) Dismiss(tourID string, step int) {
	tp := p.Tours[tourID]
	if tp == nil {
		return
	}
	tp.DismissedAt = time.Now()
	tp.DismissedStep = step
	p.UpdatedAt = time.Now()
}

// IsCompleted reports whether a tour was ever completed.
func (p *Progress) IsCompleted(tourID string) bool {
	tp := p.Tours[tourID]
	return tp != nil && !tp.CompletedAt.IsZero()
}

// SeenPercent returns the share of steps shown at least once.
func (p *Progress) SeenPercent(tourID string) int {
	tp := p.Tours[tourID]
	if tp == nil || tp.TotalSteps == 0 {
		return 0
	}
	seen := len(tp.SeenSteps)
	if seen > tp.TotalSteps {
		seen = tp.TotalSteps
	}
	return (seen * 100) / tp.TotalSteps
}

// IDs returns the recorded tour ids in order.
func (p *Progress) IDs() []string {
	ids := make([]string, 0, len(p.Tours))
	for id := range p.Tours {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Forget drops one tour's record.
func (p *Progress) Forget(tourID string) {
	delete(p.Tours, tourID)
	p.UpdatedAt = time.Now()
}

// Reset clears all progress.
func (p *Progress) Reset() {
	p.Tours = make(map[string]*TourProgress)
	p.UpdatedAt = time.Now()
}

// ProgressStore persists Progress as JSON.
type ProgressStore struct {
	fs   ports.FileSystem
	path string
	mu   sync.RWMutex
}

// DefaultProgressPath is where progress lives unless overridden.
const DefaultProgressPath = "~/.tourguide/progress.json"

// NewProgressStore creates a store at path using fs.
func NewProgressStore(fs ports.FileSystem, path string) *ProgressStore {
	if path == "" {
		path = DefaultProgressPath
	}
	return &ProgressStore{fs: fs, path: ports.ExpandPath(path)}
}

// Load reads progress, returning an empty record when none exists yet.
func (s *ProgressStore) Load() (*Progress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.fs.Exists(s.path) {
		return NewProgress(), nil
	}
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	var progress Progress
	if err := json.Unmarshal(data, &progress); err != nil {
		return nil, err
	}
	if progress.Tours == nil {
		progress.Tours = make(map[string]*TourProgress)
	}
	return &progress, nil
}

// Save writes progress.
func (s *ProgressStore) Save(progress *Progress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(progress, "", "  ")
	if err != nil {
		return err
	}
	return s.fs.WriteFile(s.path, data, os.FileMode(0o644))
}

// Path returns the storage path.
func (s *ProgressStore) Path() string {
	return s.path
}
