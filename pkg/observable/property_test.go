package observable

import (
	stderrors "errors"
	"testing"
)

func TestSetNotifiesBeforeCommit(t *testing.T) {
	p := NewProperty(10)

	var sawDuringNotify int
	p.AddObserver(func(old, new int) {
		// The backing value must still be the old one while observers run.
		sawDuringNotify = p.Value()
		if old != 10 {
			t.Errorf("expected old value 10, got %d", old)
		}
		if new != 42 {
			t.Errorf("expected new value 42, got %d", new)
		}
	})

	p.Set(42)

	if sawDuringNotify != 10 {
		t.Errorf("observer saw committed value %d before commit", sawDuringNotify)
	}
	if p.Value() != 42 {
		t.Errorf("expected committed value 42, got %d", p.Value())
	}
}

func TestSetNotifiesAcrossSequenceOfAssignments(t *testing.T) {
	p := NewProperty(0)

	type pair struct{ old, new int }
	var calls []pair
	p.AddObserver(func(old, new int) {
		calls = append(calls, pair{old, new})
	})

	p.Set(1)
	p.Set(5)
	p.Set(5)

	want := []pair{{0, 1}, {1, 5}, {5, 5}}
	if len(calls) != len(want) {
		t.Fatalf("expected %d notifications, got %d", len(want), len(calls))
	}
	for i, w := range want {
		if calls[i] != w {
			t.Errorf("call %d: expected %+v, got %+v", i, w, calls[i])
		}
	}
}

func TestObserversRunInRegistrationOrder(t *testing.T) {
	p := NewProperty(0.0)

	var order []int
	for i := 0; i < 5; i++ {
		i := i
		p.AddObserver(func(old, new float64) {
			order = append(order, i)
		})
	}

	p.Set(1.0)

	for i, got := range order {
		if got != i {
			t.Fatalf("expected registration order, got %v", order)
		}
	}
	if len(order) != 5 {
		t.Errorf("expected 5 notifications, got %d", len(order))
	}
}

func TestOrderPreservedAfterRemoval(t *testing.T) {
	p := NewProperty(0)

	var order []string
	p.AddObserver(func(int, int) { order = append(order, "a") })
	removeB := p.AddObserver(func(int, int) { order = append(order, "b") })
	p.AddObserver(func(int, int) { order = append(order, "c") })

	removeB()
	p.Set(1)

	if len(order) != 2 || order[0] != "a" || order[1] != "c" {
		t.Errorf("expected [a c], got %v", order)
	}
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	p := NewProperty(0)

	unsub := p.AddObserver(func(int, int) {})
	p.AddObserver(func(int, int) {})

	unsub()
	unsub()

	if p.ObserverCount() != 1 {
		t.Errorf("expected 1 observer, got %d", p.ObserverCount())
	}
}

func TestSetSilentlyDoesNotNotify(t *testing.T) {
	p := NewProperty(0)

	notified := false
	p.AddObserver(func(int, int) { notified = true })

	p.SetSilently(99)

	if notified {
		t.Error("SetSilently must not notify observers")
	}
	if p.Value() != 99 {
		t.Errorf("expected value 99, got %d", p.Value())
	}
}

func TestReentrantSetPanics(t *testing.T) {
	p := NewProperty(0)
	p.AddObserver(func(old, new int) {
		p.Set(new + 1)
	})

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected reentrant Set to panic")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected panic value to be an error, got %T", r)
		}
		if !stderrors.Is(err, ErrReentrantAssignment) {
			t.Errorf("expected ErrReentrantAssignment, got %v", err)
		}
	}()

	p.Set(1)
}

func TestObserverMayAssignAnotherProperty(t *testing.T) {
	width := NewProperty(0.0)
	height := NewProperty(0.0)

	width.AddObserver(func(old, new float64) {
		height.Set(new / 2)
	})

	width.Set(100)

	if height.Value() != 50 {
		t.Errorf("expected height 50, got %v", height.Value())
	}
}

func TestObserverMaySilentlyWriteOwnProperty(t *testing.T) {
	// An observer driving an animation bound to the property it observes
	// writes through the silent path while notification is in flight.
	p := NewProperty(0.0)
	p.AddObserver(func(old, new float64) {
		p.SetSilently(old + (new-old)/2)
	})

	p.Set(100)

	// Commit still wins after notification completes.
	if p.Value() != 100 {
		t.Errorf("expected committed value 100, got %v", p.Value())
	}
}

func TestSubscribeDuringNotificationSkipsCurrentPass(t *testing.T) {
	p := NewProperty(0)

	lateCalls := 0
	p.AddObserver(func(int, int) {
		p.AddObserver(func(int, int) { lateCalls++ })
	})

	p.Set(1)
	if lateCalls != 0 {
		t.Error("observer added mid-notification should not run in the same pass")
	}

	p.Set(2)
	if lateCalls != 1 {
		t.Errorf("expected late observer to run on the next Set, got %d calls", lateCalls)
	}
}

func TestUnsubscribeDuringNotification(t *testing.T) {
	p := NewProperty(0)

	var unsubSelf func()
	calls := 0
	unsubSelf = p.AddObserver(func(int, int) {
		calls++
		unsubSelf()
	})

	p.Set(1)
	p.Set(2)

	if calls != 1 {
		t.Errorf("expected a self-removing observer to fire once, got %d", calls)
	}
}

func TestNotifierOrderAndRemoval(t *testing.T) {
	n := NewNotifier()

	var order []string
	n.AddListener(func() { order = append(order, "a") })
	removeB := n.AddListener(func() { order = append(order, "b") })

	n.Notify()
	removeB()
	n.Notify()

	want := []string{"a", "b", "a"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
	if n.ListenerCount() != 1 {
		t.Errorf("expected 1 listener, got %d", n.ListenerCount())
	}
}
