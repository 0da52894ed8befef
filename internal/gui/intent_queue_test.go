package gui

import (
	"testing"

	"github.com/appengine-ltd/ghost-range/internal/parser"
)

func TestIntentQueueOrder(t *testing.T) {
	q := newIntentQueue(4)
	q.EnqueueIntent(parser.Intent{Verb: "heal"})
	q.EnqueueIntent(parser.Intent{Verb: "ammo"})

	first, ok := q.Dequeue()
	if !ok || first.Verb != "heal" {
		t.Fatalf("expected heal first, got %+v ok=%v", first, ok)
	}
	second, ok := q.Dequeue()
	if !ok || second.Verb != "ammo" {
		t.Fatalf("expected ammo second, got %+v ok=%v", second, ok)
	}
	if _, ok := q.Dequeue(); ok {
		t.Fatalf("expected empty queue")
	}
}

func TestIntentQueueDropsWhenFull(t *testing.T) {
	q := newIntentQueue(2)
	q.EnqueueIntent(parser.Intent{Verb: "a"})
	q.EnqueueIntent(parser.Intent{Verb: "b"})
	q.EnqueueIntent(parser.Intent{Verb: "c"}) // dropped

	got := []string{}
	for {
		intent, ok := q.Dequeue()
		if !ok {
			break
		}
		got = append(got, intent.Verb)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("expected first two intents retained, got %v", got)
	}
}

func TestConsoleLogTrimsToLimit(t *testing.T) {
	var c consoleState
	for i := 0; i < consoleLogLimit+25; i++ {
		c.appendLine("line")
	}
	if len(c.Log) != consoleLogLimit {
		t.Fatalf("expected log trimmed to %d, got %d", consoleLogLimit, len(c.Log))
	}
}
