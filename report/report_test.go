package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wihd/balance/engine"
	"github.com/wihd/balance/majority"
)

func solvedEngine(t *testing.T, coinCount int) *engine.Engine[majority.State] {
	t.Helper()
	cache := engine.NewCache()
	problem := majority.New(coinCount, cache)
	e := engine.New[majority.State](problem)
	e.Solve(engine.DepthInfinity)
	return e
}

func TestTextProducesManagerBlockAndRootState(t *testing.T) {
	e := solvedEngine(t, 3)
	var buf bytes.Buffer
	if err := Text[majority.State](e, &buf, TextOptions{}); err != nil {
		t.Fatalf("Text returned error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Manager {") {
		t.Fatalf("output missing Manager block:\n%s", out)
	}
	if !strings.Contains(out, "State #1") {
		t.Fatalf("output missing root state #1:\n%s", out)
	}
}

func TestTextHappyPathIsShorterThanFull(t *testing.T) {
	e := solvedEngine(t, 5)
	var full, happy bytes.Buffer
	if err := Text[majority.State](e, &full, TextOptions{}); err != nil {
		t.Fatalf("Text (full) returned error: %v", err)
	}
	if err := Text[majority.State](e, &happy, TextOptions{HappyPath: true}); err != nil {
		t.Fatalf("Text (happy path) returned error: %v", err)
	}
	if happy.Len() > full.Len() {
		t.Fatalf("happy path output (%d bytes) is longer than full output (%d bytes)", happy.Len(), full.Len())
	}
}

func TestDOTProducesValidLookingDigraph(t *testing.T) {
	e := solvedEngine(t, 3)
	dot := DOT[majority.State](e)
	if !strings.HasPrefix(dot, "digraph Balance {") {
		t.Fatalf("DOT output does not start with expected header:\n%s", dot)
	}
	if !strings.Contains(dot, "n1 [label=") {
		t.Fatalf("DOT output missing root node n1:\n%s", dot)
	}
}
