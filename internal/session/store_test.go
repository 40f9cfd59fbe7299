package session

import (
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/rylanh006/minesweeper/internal/board"
)

func newTestBoard(t *testing.T) *board.Board {
	t.Helper()
	r := rand.New(rand.NewPCG(1, 2))
	b, err := board.New(board.Beginner, r)
	if err != nil {
		t.Fatalf("failed to create board: %v", err)
	}
	return b
}

func TestStoreReadEmpty(t *testing.T) {
	s := NewStore()
	if _, err := s.Get(1); err != ErrNotFound {
		t.Fatalf("expected not found error, received %v", err)
	}
}

func TestStoreCreateAndGet(t *testing.T) {
	s := NewStore()
	sess := s.Create(newTestBoard(t))

	got, err := s.Get(sess.Id)
	if err != nil {
		t.Fatalf("failed to get session: %v", err)
	}
	if got != sess {
		t.Fatalf("expected %v, actual %v", sess, got)
	}
}

func TestStoreDeleteMissing(t *testing.T) {
	s := NewStore()
	s.Delete(42)
}

func TestStoreDeleteExisting(t *testing.T) {
	s := NewStore()
	sess := s.Create(newTestBoard(t))
	s.Delete(sess.Id)

	if _, err := s.Get(sess.Id); err != ErrNotFound {
		t.Fatalf("expected to get not found err, instead got %v", err)
	}
}

func TestStoreDistinctIds(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	ids := make([]int64, 16)
	for i := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids[i] = s.Create(newTestBoard(t)).Id
		}()
	}
	wg.Wait()

	seen := make(map[int64]bool)
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("duplicate session id %d", id)
		}
		seen[id] = true
	}
	if s.Len() != len(ids) {
		t.Fatalf("expected %d sessions, got %d", len(ids), s.Len())
	}
}

func TestSessionStampsEndedAt(t *testing.T) {
	s := NewStore()

	r := rand.New(rand.NewPCG(1, 2))
	b, err := board.New(board.Params{Width: 2, Height: 1, MineCount: 0}, r)
	if err != nil {
		t.Fatal(err)
	}
	sess := s.Create(b)

	sess.Do(func(b *board.Board) { b.ToggleFlag(0, 0) })
	if sess.EndedAt() != nil {
		t.Fatal("ended_at set before game over")
	}

	sess.Do(func(b *board.Board) {
		b.ToggleFlag(0, 0)
		b.Reveal(0, 0)
	})
	first := sess.EndedAt()
	if first == nil {
		t.Fatal("ended_at not set on game over")
	}

	sess.Do(func(b *board.Board) { b.RevealAll() })
	if got := sess.EndedAt(); got != first {
		t.Fatalf("ended_at restamped: %v != %v", got, first)
	}
}
