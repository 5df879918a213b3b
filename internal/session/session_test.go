package session

import (
	"sync"
	"testing"
)

func TestStore(t *testing.T) {
	s := NewStore()

	if got := s.Get(1); got != Idle {
		t.Fatalf("unknown user state = %v, want idle", got)
	}

	s.Set(1, AwaitingCardInput)
	if got := s.Get(1); got != AwaitingCardInput {
		t.Fatalf("state = %v, want awaiting_card_input", got)
	}
	if got := s.Get(2); got != Idle {
		t.Fatalf("other user state = %v, want idle", got)
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}

	s.Clear(1)
	if got := s.Get(1); got != Idle {
		t.Fatalf("state after Clear = %v, want idle", got)
	}
	if s.Len() != 0 {
		t.Fatalf("Len after Clear = %d, want 0", s.Len())
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := int64(0); i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			s.Set(id, AwaitingCardInput)
			_ = s.Get(id)
			if id%2 == 0 {
				s.Clear(id)
			}
		}(i)
	}
	wg.Wait()

	if s.Len() != 25 {
		t.Fatalf("Len = %d, want 25", s.Len())
	}
}
