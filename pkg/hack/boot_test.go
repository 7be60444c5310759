package hack

import (
	"errors"
	"testing"
	"time"
)

// machineFunc adapts a plain function to the Machine interface.
type machineFunc func(publish func(*RAM)) int

func (f machineFunc) Run(publish func(*RAM)) int { return f(publish) }

func TestBootPublishAndStatus(t *testing.T) {
	b := Start(machineFunc(func(publish func(*RAM)) int {
		r := NewRAM(RAMSize)
		r.Set(0, 42)
		publish(r)
		return 3
	}))

	r, err := b.WaitRAM(time.Second)
	if err != nil {
		t.Fatalf("WaitRAM: %v", err)
	}
	if got := r.At(0); got != 42 {
		t.Errorf("published RAM word 0: expected 42, got %d", got)
	}
	if code := b.Wait(); code != 3 {
		t.Errorf("exit status: expected 3, got %d", code)
	}
	if code := b.Wait(); code != 3 {
		t.Errorf("second Wait: expected 3, got %d", code)
	}
}

func TestBootTimeout(t *testing.T) {
	never := make(chan struct{})
	b := Start(machineFunc(func(publish func(*RAM)) int {
		<-never
		return 0
	}))

	_, err := b.WaitRAM(10 * time.Millisecond)
	if !errors.Is(err, ErrInitTimeout) {
		t.Errorf("WaitRAM on silent machine: expected ErrInitTimeout, got %v", err)
	}
	close(never)
}

func TestBootPublishOnce(t *testing.T) {
	first := NewRAM(4)
	second := NewRAM(4)
	b := Start(machineFunc(func(publish func(*RAM)) int {
		publish(first)
		publish(second) // must be ignored
		return 0
	}))

	r, err := b.WaitRAM(time.Second)
	if err != nil {
		t.Fatalf("WaitRAM: %v", err)
	}
	if r != first {
		t.Error("WaitRAM: expected the first published RAM")
	}
	b.Wait()
}

// The producer keeps writing after publishing; the consumer must observe
// word-level values without synchronizing with it.
func TestBootConcurrentWrites(t *testing.T) {
	b := Start(machineFunc(func(publish func(*RAM)) int {
		r := NewRAM(RAMSize)
		publish(r)
		for i := 0; i < 1000; i++ {
			r.Set(ScreenBase, Word(i))
		}
		return 0
	}))

	r, err := b.WaitRAM(time.Second)
	if err != nil {
		t.Fatalf("WaitRAM: %v", err)
	}
	for i := 0; i < 1000; i++ {
		v := r.At(ScreenBase)
		if v < 0 || v >= 1000 {
			t.Fatalf("observed torn word %d", v)
		}
	}
	b.Wait()
}
