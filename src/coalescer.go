package latinleven

import (
	"sync"

	"github.com/canisaugustinus/latin-leven/src/util"
	"github.com/google/uuid"
)

// NewSessionID mints a fresh session identifier for a front-end
// collaborator that has no session id of its own to hand the coalescer
// (e.g. a newly opened websocket connection).
func NewSessionID() string {
	return uuid.NewString()
}

const evtSubmitted util.EventType = iota

// Coalescer is a last-write-wins dispatcher that sits in front of an
// Engine's suggest operation. Each session has at most one pending query;
// a newer Submit for a session overwrites an older one that the worker
// hasn't yet picked up. Once the worker starts a session's computation it
// runs to completion before looking at that session's pending slot again.
type Coalescer struct {
	engine *Engine
	k      int
	emit   func(session string, results []string)

	mu       sync.Mutex
	pending  map[string]string
	inflight map[string]bool

	dropped *util.ConcurrentSet[string]
	box     *util.EventBox
	quit    *util.AtomicBool
	wg      sync.WaitGroup
}

// NewCoalescer starts the background worker and returns a ready Coalescer.
// emit is called once per processed snapshot, from a worker goroutine —
// never from Submit itself.
func NewCoalescer(engine *Engine, k int, emit func(session string, results []string)) *Coalescer {
	c := &Coalescer{
		engine:   engine,
		k:        k,
		emit:     emit,
		pending:  make(map[string]string),
		inflight: make(map[string]bool),
		dropped:  util.NewConcurrentSet[string](),
		box:      util.NewEventBox(),
		quit:     util.NewAtomicBool(false),
	}
	c.wg.Add(1)
	go c.loop()
	return c
}

// Submit records text as the latest pending query for session,
// discarding whatever text was pending for it before. Non-blocking.
func (c *Coalescer) Submit(session, text string) {
	c.mu.Lock()
	c.pending[session] = text
	c.mu.Unlock()
	c.box.Set(evtSubmitted, nil)
}

// Drop marks session as gone: any result computed for it from now on is
// silently discarded instead of reaching emit.
func (c *Coalescer) Drop(session string) {
	c.dropped.Add(session)
}

// Close stops the worker once any in-flight computations finish. Pending
// text that never started is simply abandoned.
func (c *Coalescer) Close() {
	c.quit.Set(true)
	c.box.Set(evtSubmitted, nil)
	c.wg.Wait()
}

func (c *Coalescer) loop() {
	defer c.wg.Done()
	for {
		c.box.Wait(func(events *util.Events) {
			events.Clear()
		})
		if c.quit.Get() {
			return
		}
		c.dispatchReady()
	}
}

// dispatchReady claims every pending session that isn't already being
// processed and starts one goroutine per session to compute it.
func (c *Coalescer) dispatchReady() {
	c.mu.Lock()
	ready := make(map[string]string)
	for session, text := range c.pending {
		if c.inflight[session] {
			continue
		}
		ready[session] = text
		delete(c.pending, session)
		c.inflight[session] = true
	}
	c.mu.Unlock()

	for session, text := range ready {
		c.wg.Add(1)
		go c.process(session, text)
	}
}

func (c *Coalescer) process(session, text string) {
	defer c.wg.Done()

	var results []string
	if text != "" {
		results, _ = c.engine.Suggest(text, c.k)
	}
	if !c.dropped.Contains(session) {
		c.emit(session, results)
	}

	c.mu.Lock()
	delete(c.inflight, session)
	_, hasMore := c.pending[session]
	c.mu.Unlock()

	if hasMore {
		c.box.Set(evtSubmitted, nil)
	}
}
