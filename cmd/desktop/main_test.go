package main

import (
	"testing"

	"github.com/pcardune/hackvm/pkg/input"
)

func TestKeyMapTargetsMappedKeys(t *testing.T) {
	// Every window key we forward must have a register code; otherwise a
	// press would silently do nothing.
	for ebKey, lk := range keyMap {
		if _, ok := input.Code(lk); !ok {
			t.Errorf("key %v maps to unmapped logical key %d", ebKey, lk)
		}
	}
	if len(keyMap) != 5 {
		t.Errorf("expected 5 forwarded keys, got %d", len(keyMap))
	}
}

func TestLayoutScalesLogicalResolution(t *testing.T) {
	g := &Game{scale: 4}
	w, h := g.Layout(800, 600)
	if w != 2048 || h != 1024 {
		t.Errorf("Layout at scale 4: expected 2048x1024, got %dx%d", w, h)
	}
}
