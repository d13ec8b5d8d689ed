package snake

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestNonTerminalIsNotInteractive(t *testing.T) {
	p := &Prompter{In: io.NopCloser(strings.NewReader("y\n"))}
	if p.IsInteractive() {
		t.Fatalf("a reader is not a terminal")
	}
	if _, err := p.Confirm("delete?"); !errors.Is(err, ErrNotInteractive) {
		t.Fatalf("expected ErrNotInteractive, got %v", err)
	}
	if _, err := p.String("cloud name", ""); !errors.Is(err, ErrNotInteractive) {
		t.Fatalf("expected ErrNotInteractive, got %v", err)
	}
}

func TestInteractiveOverride(t *testing.T) {
	yes := true
	p := &Prompter{In: io.NopCloser(strings.NewReader("")), Interactive: &yes}
	if !p.IsInteractive() {
		t.Fatalf("override ignored")
	}
}
