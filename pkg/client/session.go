package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"wedding-planner/internal/dto/response"
)

// SessionState is what survives between runs. It is stored as plain JSON.
type SessionState struct {
	AuthToken  string                `json:"authToken,omitempty"`
	User       *response.PublicUser  `json:"user,omitempty"`
	AdminToken string                `json:"adminToken,omitempty"`
	AdminUser  *response.PublicAdmin `json:"adminUser,omitempty"`
}

type Store interface {
	Load() (SessionState, error)
	Save(SessionState) error
}

// FileStore keeps the session in a single JSON file.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (f *FileStore) Load() (SessionState, error) {
	var state SessionState

	raw, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return state, nil
	}
	if err != nil {
		return state, fmt.Errorf("read session: %w", err)
	}
	if err := json.Unmarshal(raw, &state); err != nil {
		return state, fmt.Errorf("parse session %s: %w", f.Path, err)
	}
	return state, nil
}

func (f *FileStore) Save(state SessionState) error {
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(f.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}
	return os.WriteFile(f.Path, raw, 0o600)
}

type MemoryStore struct {
	mu    sync.Mutex
	state SessionState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load() (SessionState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, nil
}

func (m *MemoryStore) Save(state SessionState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state
	return nil
}

type AuthEventKind int

const (
	UserLoggedIn AuthEventKind = iota + 1
	UserLoggedOut
	AdminLoggedIn
	AdminLoggedOut
)

type AuthEvent struct {
	Kind  AuthEventKind
	State SessionState
}

// Session holds both token slots. Observers are called synchronously, in
// subscription order, after the state has been persisted.
type Session struct {
	mu        sync.RWMutex
	store     Store
	state     SessionState
	observers map[int]func(AuthEvent)
	nextID    int
}

func NewSession(store Store) *Session {
	return &Session{store: store, observers: map[int]func(AuthEvent){}}
}

// OpenSession restores whatever store already holds.
func OpenSession(store Store) (*Session, error) {
	s := NewSession(store)
	state, err := store.Load()
	if err != nil {
		return nil, err
	}
	s.state = state
	return s, nil
}

func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Session) UserToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.AuthToken
}

func (s *Session) AdminToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.AdminToken
}

func (s *Session) IsAuthenticated() bool      { return s.UserToken() != "" }
func (s *Session) IsAdminAuthenticated() bool { return s.AdminToken() != "" }

// Subscribe registers fn and returns a function that removes it.
func (s *Session) Subscribe(fn func(AuthEvent)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

func (s *Session) setUser(token string, user response.PublicUser) error {
	return s.update(UserLoggedIn, func(st *SessionState) {
		st.AuthToken = token
		st.User = &user
	})
}

func (s *Session) clearUser() error {
	return s.update(UserLoggedOut, func(st *SessionState) {
		st.AuthToken = ""
		st.User = nil
	})
}

func (s *Session) setAdmin(token string, admin response.PublicAdmin) error {
	return s.update(AdminLoggedIn, func(st *SessionState) {
		st.AdminToken = token
		st.AdminUser = &admin
	})
}

func (s *Session) clearAdmin() error {
	return s.update(AdminLoggedOut, func(st *SessionState) {
		st.AdminToken = ""
		st.AdminUser = nil
	})
}

func (s *Session) update(kind AuthEventKind, mutate func(*SessionState)) error {
	s.mu.Lock()
	mutate(&s.state)
	state := s.state
	err := s.store.Save(state)

	ids := make([]int, 0, len(s.observers))
	for id := range s.observers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	observers := make([]func(AuthEvent), 0, len(ids))
	for _, id := range ids {
		observers = append(observers, s.observers[id])
	}
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	for _, fn := range observers {
		fn(AuthEvent{Kind: kind, State: state})
	}
	return nil
}
