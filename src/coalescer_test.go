package latinleven

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type emission struct {
	session string
	results []string
}

func newTestCoalescer(t *testing.T, k int) (*Coalescer, chan emission) {
	t.Helper()
	e, err := NewEngine([]string{"amor", "amicus", "amare"})
	require.NoError(t, err)
	t.Cleanup(e.Close)

	ch := make(chan emission, 16)
	c := NewCoalescer(e, k, func(session string, results []string) {
		ch <- emission{session, results}
	})
	t.Cleanup(c.Close)
	return c, ch
}

func awaitEmission(t *testing.T, ch chan emission) emission {
	t.Helper()
	select {
	case em := <-ch:
		return em
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for coalescer emission")
		return emission{}
	}
}

func TestCoalescerEmitsOncePerSubmit(t *testing.T) {
	c, ch := newTestCoalescer(t, 2)
	c.Submit("s1", "am")
	em := awaitEmission(t, ch)
	require.Equal(t, "s1", em.session)
	require.NotEmpty(t, em.results)
}

func TestCoalescerEmptyTextEmitsEmptyResult(t *testing.T) {
	c, ch := newTestCoalescer(t, 2)
	c.Submit("s1", "")
	em := awaitEmission(t, ch)
	require.Equal(t, "s1", em.session)
	require.Empty(t, em.results)
}

func TestCoalescerDropSuppressesEmission(t *testing.T) {
	c, ch := newTestCoalescer(t, 2)
	c.Drop("gone")
	c.Submit("gone", "am")

	// Submit something for a live session afterward and confirm only it
	// is ever emitted for — the dropped session's result never arrives.
	c.Submit("alive", "am")
	seen := map[string]bool{}
	for i := 0; i < 2; i++ {
		select {
		case em := <-ch:
			seen[em.session] = true
		case <-time.After(500 * time.Millisecond):
		}
	}
	require.True(t, seen["alive"])
	require.False(t, seen["gone"])
}

func TestNewSessionIDIsUnique(t *testing.T) {
	a, b := NewSessionID(), NewSessionID()
	require.NotEqual(t, a, b)
	require.NotEmpty(t, a)
}

func TestCoalescerLastWriteWinsWhenOverwrittenBeforePickup(t *testing.T) {
	c, ch := newTestCoalescer(t, 2)
	// Both submits happen before the worker can possibly have started
	// either one; only the latest text should ever be scored.
	c.Submit("s1", "ami")
	c.Submit("s1", "amo")
	em := awaitEmission(t, ch)
	require.Equal(t, "s1", em.session)

	select {
	case second := <-ch:
		t.Fatalf("expected exactly one emission, got a second: %+v", second)
	case <-time.After(200 * time.Millisecond):
	}
}
