package engine

import "testing"

func TestEventInvokeOrder(t *testing.T) {
	var ev Event[int]
	var got []int

	ev.AddListener(func(v int) { got = append(got, v) })
	ev.AddListener(func(v int) { got = append(got, v*10) })
	ev.AddListener(nil)

	ev.Invoke(2)

	if ev.ListenerCount() != 2 {
		t.Errorf("Expected 2 listeners, got %d", ev.ListenerCount())
	}
	if len(got) != 2 || got[0] != 2 || got[1] != 20 {
		t.Errorf("Unexpected calls: %v", got)
	}

	ev.RemoveAllListeners()
	ev.Invoke(3)
	if len(got) != 2 {
		t.Error("Cleared event should not call anyone")
	}
}
