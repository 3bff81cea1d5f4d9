package x11clipboard

import (
	"sync"
	"testing"

	"github.com/jezek/xgb/xproto"
)

func TestStoreInsertGet(t *testing.T) {
	s := NewStore()

	if _, _, ok := s.Get(1); ok {
		t.Fatalf("Get on empty store: ok = true, want false")
	}

	s.Insert(1, 2, []byte("hello"))
	target, value, ok := s.Get(1)
	if !ok {
		t.Fatalf("Get after Insert: ok = false, want true")
	}
	if target != 2 {
		t.Errorf("target = %d, want 2", target)
	}
	if string(value) != "hello" {
		t.Errorf("value = %q, want %q", value, "hello")
	}
}

func TestStoreInsertOverwrites(t *testing.T) {
	s := NewStore()
	s.Insert(1, 2, []byte("first"))
	s.Insert(1, 3, []byte("second"))

	target, value, ok := s.Get(1)
	if !ok {
		t.Fatalf("Get: ok = false, want true")
	}
	if target != 3 || string(value) != "second" {
		t.Errorf("got (%d, %q), want (3, %q)", target, value, "second")
	}
}

func TestStoreRemove(t *testing.T) {
	s := NewStore()
	s.Insert(1, 2, []byte("hello"))
	s.Remove(1)

	if _, _, ok := s.Get(1); ok {
		t.Fatalf("Get after Remove: ok = true, want false")
	}

	// Removing an absent selection is a no-op, not an error.
	s.Remove(99)
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			s.Insert(xproto.Atom(i%5), xproto.Atom(1), []byte("x"))
		}(i)
		go func(i int) {
			defer wg.Done()
			s.Get(xproto.Atom(i % 5))
		}(i)
	}
	wg.Wait()
}
