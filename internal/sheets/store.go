// internal/sheets/store.go
package sheets

import (
	"errors"
	"sync"
)

// Name identifies one of the site's slide-over panels.
type Name string

const (
	PT            Name = "pt"
	PTDetail      Name = "pt-detail"
	Contact       Name = "contact"
	GroupTraining Name = "group-training"
)

var ErrUnknownSheet = errors.New("unknown sheet")

var knownSheets = []Name{PT, PTDetail, Contact, GroupTraining}

// Payload carries the context a panel was opened with. Fields that do not
// apply to a given panel stay empty.
type Payload struct {
	TrainerID string `json:"trainerId,omitempty"`
	Subject   string `json:"subject,omitempty"`
	ClassType string `json:"classType,omitempty"`
	Gym       string `json:"gym,omitempty"`
}

// State is the visibility and payload of one panel.
type State struct {
	Open    bool    `json:"open"`
	Payload Payload `json:"payload"`
}

// Store holds panel state for one client session. Instances are
// independent, so tests and concurrent sessions never share state.
type Store struct {
	mu     sync.RWMutex
	sheets map[Name]State
}

func NewStore() *Store {
	s := &Store{sheets: make(map[Name]State, len(knownSheets))}
	for _, name := range knownSheets {
		s.sheets[name] = State{}
	}
	return s
}

// Open marks the panel visible and replaces its payload wholesale.
func (s *Store) Open(name Name, payload Payload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sheets[name]; !ok {
		return ErrUnknownSheet
	}
	s.sheets[name] = State{Open: true, Payload: payload}
	return nil
}

// Close hides the panel and clears its payload.
func (s *Store) Close(name Name) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sheets[name]; !ok {
		return ErrUnknownSheet
	}
	s.sheets[name] = State{}
	return nil
}

// CloseAll hides every panel.
func (s *Store) CloseAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name := range s.sheets {
		s.sheets[name] = State{}
	}
}

// Get returns one panel's state.
func (s *Store) Get(name Name) (State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.sheets[name]
	if !ok {
		return State{}, ErrUnknownSheet
	}
	return state, nil
}

// Snapshot returns a copy of the full panel state.
func (s *Store) Snapshot() map[Name]State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[Name]State, len(s.sheets))
	for name, state := range s.sheets {
		out[name] = state
	}
	return out
}
