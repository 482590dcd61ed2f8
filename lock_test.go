package broker

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestTimedMutexSerialisesCallers(t *testing.T) {
	m := newTimedMutex()
	if err := m.lock(time.Second, "broker:9092"); err != nil {
		t.Fatalf("lock: %v", err)
	}

	acquired := make(chan struct{})
	go func() {
		if err := m.lock(time.Second, "broker:9092"); err != nil {
			t.Errorf("second lock: %v", err)
			return
		}
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("second lock acquired while first still held")
	case <-time.After(50 * time.Millisecond):
	}

	m.unlock()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second lock never acquired after unlock")
	}
}

func TestTimedMutexTimesOut(t *testing.T) {
	m := newTimedMutex()
	if err := m.lock(time.Second, "broker:9092"); err != nil {
		t.Fatalf("lock: %v", err)
	}

	err := m.lock(20*time.Millisecond, "broker:9092")
	if err == nil {
		t.Fatal("expected lock timeout, got nil")
	}
	var be *Error
	if !errors.As(err, &be) || be.Kind != NonRetriable {
		t.Fatalf("expected NonRetriable *Error, got %#v", err)
	}
}

func TestTimedMutexZeroTimeoutBlocksIndefinitely(t *testing.T) {
	m := newTimedMutex()
	if err := m.lock(time.Second, "broker:9092"); err != nil {
		t.Fatalf("lock: %v", err)
	}

	acquired := make(chan error, 1)
	go func() { acquired <- m.lock(0, "broker:9092") }()

	select {
	case <-acquired:
		t.Fatal("zero-timeout lock returned before the holder unlocked")
	case <-time.After(50 * time.Millisecond):
	}

	m.unlock()

	select {
	case err := <-acquired:
		if err != nil {
			t.Fatalf("lock: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("zero-timeout lock never acquired after unlock")
	}
}

func TestTimedMutexLockContextUsesShorterOfDeadlineAndTimeout(t *testing.T) {
	m := newTimedMutex()
	if err := m.lock(time.Second, "broker:9092"); err != nil {
		t.Fatalf("lock: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := m.lockContext(ctx, time.Minute, "broker:9092")
	elapsed := time.Since(start)

	if err == nil {
		t.Fatal("expected lock timeout from context deadline, got nil")
	}
	if elapsed > 500*time.Millisecond {
		t.Fatalf("lockContext took %s, expected it to honour the short context deadline", elapsed)
	}
}

func TestTimedMutexUnlockWithoutContentionIsNoop(t *testing.T) {
	m := newTimedMutex()
	m.unlock()
	m.unlock()

	if err := m.lock(time.Second, "broker:9092"); err != nil {
		t.Fatalf("lock after redundant unlocks: %v", err)
	}
}
