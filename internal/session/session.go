// internal/session/session.go
package session

import "sync"

type State int

const (
	Idle State = iota
	AwaitingCardInput
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AwaitingCardInput:
		return "awaiting_card_input"
	default:
		return "unknown"
	}
}

// Store хранит состояние диалога по user_id. Отсутствие записи == Idle.
type Store struct {
	mu     sync.Mutex
	states map[int64]State
}

func NewStore() *Store {
	return &Store{states: make(map[int64]State)}
}

func (s *Store) Get(userID int64) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states[userID]
}

func (s *Store) Set(userID int64, state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if state == Idle {
		delete(s.states, userID)
		return
	}
	s.states[userID] = state
}

func (s *Store) Clear(userID int64) {
	s.Set(userID, Idle)
}

// Len — число пользователей не в Idle.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states)
}
