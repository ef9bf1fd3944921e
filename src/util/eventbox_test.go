package util

import "testing"

// Event types exercised by this test; the coalescer defines its own.
const (
	evtQueued EventType = iota
	evtProgress
	evtDone
	evtTotal
)

func TestEventBox(t *testing.T) {
	eb := NewEventBox()

	// Wait should return immediately
	ch := make(chan bool)

	go func() {
		eb.Set(evtQueued, 10)
		ch <- true
		<-ch
		eb.Set(evtProgress, 10)
		eb.Set(evtProgress, 15)
		eb.Set(evtProgress, 20)
		eb.Set(evtTotal, 30)
		ch <- true
		<-ch
		eb.Set(evtDone, 40)
		ch <- true
		<-ch
	}()

	count := 0
	sum := 0
	looping := true
	for looping {
		<-ch
		eb.Wait(func(events *Events) {
			for _, value := range *events {
				switch val := value.(type) {
				case int:
					sum += val
					looping = sum < 100
				}
			}
			events.Clear()
		})
		ch <- true
		count++
	}

	if count != 3 {
		t.Error("Invalid number of events", count)
	}
	if sum != 100 {
		t.Error("Invalid sum", sum)
	}
}

func TestEventBoxPeekAndWatch(t *testing.T) {
	eb := NewEventBox()
	if eb.Peek(evtProgress) {
		t.Error("Peek should report false before the event is ever set")
	}
	eb.Unwatch(evtProgress)
	eb.Set(evtProgress, 1)
	if !eb.Peek(evtProgress) {
		t.Error("Peek should report true once the event has been set, regardless of the ignore list")
	}
	eb.Watch(evtProgress)
	if eb.ignore[evtProgress] {
		t.Error("Watch should remove the event from the ignore list")
	}
}
