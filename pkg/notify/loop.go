package notify

import "sync"

// Scheduler runs lifecycle callbacks. Timer callbacks are marshalled
// through the controller's Scheduler so applications can serialize all
// queue mutations onto a single goroutine.
type Scheduler interface {
	// Dispatch queues fn for execution. It must not block.
	Dispatch(fn func())
}

// syncScheduler runs functions inline on the caller's goroutine.
// It is the default: the Store is already safe for concurrent use, so
// serialization is optional.
type syncScheduler struct{}

func (syncScheduler) Dispatch(fn func()) { fn() }

// defaultLoopQueue bounds the dispatch queue. Overflow drops the callback,
// matching the best-effort timer contract.
const defaultLoopQueue = 256

// Loop is a single-goroutine cooperative scheduler. All functions passed
// to Dispatch run sequentially on one goroutine, so no two callbacks ever
// interleave mid-operation.
//
//	loop := notify.NewLoop()
//	defer loop.Close()
//
//	region := notify.NewRegion(
//	    notify.WithDefaults(notify.WithScheduler(loop)),
//	)
type Loop struct {
	dispatchCh chan func()
	done       chan struct{}
	closeOnce  sync.Once
}

// NewLoop creates a loop and starts its goroutine.
func NewLoop() *Loop {
	l := &Loop{
		dispatchCh: make(chan func(), defaultLoopQueue),
		done:       make(chan struct{}),
	}
	go l.run()
	return l
}

func (l *Loop) run() {
	for {
		select {
		case fn := <-l.dispatchCh:
			fn()
		case <-l.done:
			// Drain callbacks queued before Close, then exit.
			for {
				select {
				case fn := <-l.dispatchCh:
					fn()
				default:
					return
				}
			}
		}
	}
}

// Dispatch queues fn to run on the loop goroutine. Functions dispatched
// after Close, or while the queue is full, are discarded.
func (l *Loop) Dispatch(fn func()) {
	select {
	case <-l.done:
		// Loop is closing, discard.
		return
	default:
	}

	select {
	case l.dispatchCh <- fn:
	case <-l.done:
	default:
		// Queue full - discard rather than block a timer goroutine.
	}
}

// Close stops the loop. Callbacks already queued still run; later
// dispatches are discarded. Close is idempotent.
func (l *Loop) Close() {
	l.closeOnce.Do(func() {
		close(l.done)
	})
}

// Done returns a channel closed when the loop begins shutting down.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}
