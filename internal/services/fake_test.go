package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/sbilibin2017/gw-support-ledger/internal/models"
)

// memStore is an in-memory stand-in for the database used by the
// behavioural tests. It counts calls so tests can check that a rejected
// token never reaches it.
type memStore struct {
	mu     sync.Mutex
	tokens map[string]bool
	users  map[int64]models.User
	notes  map[string]models.Note
	calls  int
}

func newMemStore(tokens ...string) *memStore {
	s := &memStore{
		tokens: map[string]bool{},
		users:  map[int64]models.User{},
		notes:  map[string]models.Note{},
	}
	for _, t := range tokens {
		s.tokens[t] = true
	}
	return s
}

func (s *memStore) Authenticate(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.tokens[token] {
		return fmt.Errorf("token %q is not valid", token)
	}
	return nil
}

func (s *memStore) touch() {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
}

func (s *memStore) storeCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *memStore) GetByPid(_ context.Context, pid int64) (*models.User, error) {
	s.touch()
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[pid]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", pid, models.ErrNotFound)
	}
	return &u, nil
}

func (s *memStore) List(_ context.Context) ([]models.User, error) {
	s.touch()
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Pid < users[j].Pid })
	return users, nil
}

func (s *memStore) Create(_ context.Context, user models.User) (*models.User, error) {
	s.touch()
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Pid]; ok {
		return nil, fmt.Errorf("Database record `user:%d` already exists", user.Pid)
	}
	s.users[user.Pid] = user
	return &user, nil
}

func (s *memStore) UpdateRank(_ context.Context, pid int64, rank models.Rank) error {
	s.touch()
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[pid]
	if !ok {
		return fmt.Errorf("user %d: %w", pid, models.ErrNotFound)
	}
	u.Rank = rank
	s.users[pid] = u
	return nil
}

func (s *memStore) UpdateName(_ context.Context, pid int64, name string) error {
	s.touch()
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[pid]
	if !ok {
		return fmt.Errorf("user %d: %w", pid, models.ErrNotFound)
	}
	u.Name = name
	s.users[pid] = u
	return nil
}

func (s *memStore) Delete(_ context.Context, pid int64) (*models.User, error) {
	s.touch()
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[pid]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", pid, models.ErrNotFound)
	}
	delete(s.users, pid)
	return &u, nil
}

func (s *memStore) Get(_ context.Context, key models.NoteKey) (*models.Note, error) {
	s.touch()
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notes[key.String()]
	if !ok {
		return nil, fmt.Errorf("note %s: %w", key, models.ErrNotFound)
	}
	return &n, nil
}

func (s *memStore) ListBySubject(_ context.Context, pid int64) ([]models.Note, error) {
	s.touch()
	s.mu.Lock()
	defer s.mu.Unlock()
	var notes []models.Note
	for _, n := range s.notes {
		if n.Pid == pid {
			notes = append(notes, n)
		}
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].CreatedAt.Before(notes[j].CreatedAt) })
	return notes, nil
}

func (s *memStore) Put(_ context.Context, note models.Note) (*models.Note, error) {
	s.touch()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes[note.Key().String()] = note
	return &note, nil
}

func (s *memStore) Replace(_ context.Context, note models.Note, expected int) (*models.Note, error) {
	s.touch()
	s.mu.Lock()
	defer s.mu.Unlock()
	key := note.Key().String()
	cur, ok := s.notes[key]
	if !ok || cur.Version != expected {
		return nil, fmt.Errorf("note %s: %w", key, models.ErrConflict)
	}
	s.notes[key] = note
	return &note, nil
}

// recordingPublisher collects published events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []models.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e models.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) kinds() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	kinds := make([]string, 0, len(p.events))
	for _, e := range p.events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}
