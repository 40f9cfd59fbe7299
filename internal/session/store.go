package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/rylanh006/minesweeper/internal/board"
)

var ErrNotFound = fmt.Errorf("session not found")

// Session couples a live board with its bookkeeping. The board itself has
// no locking; Do serializes every mutation and read, keeping the engine's
// single-owner contract intact under concurrent handlers.
type Session struct {
	Id        int64
	StartedAt time.Time

	mu      sync.Mutex
	board   *board.Board
	endedAt *time.Time
}

// Do runs f with exclusive access to the board. The end timestamp is
// stamped on the transition into game over.
func (s *Session) Do(f func(b *board.Board)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f(s.board)
	if s.board.GameOver() && s.endedAt == nil {
		t := time.Now().UTC()
		s.endedAt = &t
	}
}

func (s *Session) EndedAt() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.endedAt
}

// Store is an in-memory registry of live game sessions. Games live only as
// long as the process; there is no cross-run persistence.
type Store struct {
	mu     sync.Mutex
	nextId int64
	items  map[int64]*Session
}

func NewStore() *Store {
	return &Store{items: make(map[int64]*Session)}
}

func (s *Store) Create(b *board.Board) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextId++
	sess := &Session{
		Id:        s.nextId,
		StartedAt: time.Now().UTC(),
		board:     b,
	}
	s.items[sess.Id] = sess
	return sess
}

// Get retrieves a session by id. If id is not present, [ErrNotFound] is
// returned.
func (s *Store) Get(id int64) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sess, nil
}

// Delete removes id from the store without checking if it existed.
func (s *Store) Delete(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
