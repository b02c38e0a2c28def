package notify

import (
	"testing"
	"time"
)

func TestLoopRunsDispatchedFunctions(t *testing.T) {
	l := NewLoop()
	defer l.Close()

	done := make(chan struct{})
	l.Dispatch(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatched function did not run")
	}
}

func TestLoopPreservesDispatchOrder(t *testing.T) {
	l := NewLoop()
	defer l.Close()

	var got []int
	done := make(chan struct{})

	for i := 0; i < 100; i++ {
		i := i
		l.Dispatch(func() { got = append(got, i) })
	}
	l.Dispatch(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not drain")
	}

	if len(got) != 100 {
		t.Fatalf("expected 100 callbacks, got %d", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("callback %d ran out of order (got %d)", i, v)
		}
	}
}

func TestLoopSerializesStoreMutations(t *testing.T) {
	l := NewLoop()
	defer l.Close()

	s := NewStore()
	done := make(chan struct{})

	for i := 0; i < 50; i++ {
		l.Dispatch(func() { s.Info("x") })
	}
	l.Dispatch(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not drain")
	}

	if got := s.Len(); got != 50 {
		t.Errorf("expected 50 notifications, got %d", got)
	}
}

func TestLoopDiscardsAfterClose(t *testing.T) {
	l := NewLoop()
	l.Close()

	select {
	case <-l.Done():
	default:
		t.Fatal("expected Done to be closed after Close")
	}

	// Must not panic or block.
	l.Dispatch(func() { t.Error("callback ran after close") })
	time.Sleep(10 * time.Millisecond)
}

func TestLoopCloseIsIdempotent(t *testing.T) {
	l := NewLoop()
	l.Close()
	l.Close()
}
