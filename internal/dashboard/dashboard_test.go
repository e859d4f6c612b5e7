package dashboard

import (
	"context"

	"github.com/rs/zerolog"
)

// fakeNotifier records every notification by level.
type fakeNotifier struct {
	successes []string
	errors    []string
	infos     []string
}

func (n *fakeNotifier) Success(message string) { n.successes = append(n.successes, message) }
func (n *fakeNotifier) Error(message string)   { n.errors = append(n.errors, message) }
func (n *fakeNotifier) Info(message string)    { n.infos = append(n.infos, message) }

// fakeConfirmer answers every confirmation with a fixed decision.
type fakeConfirmer struct {
	accept bool
	asked  int
}

func (c *fakeConfirmer) Confirm(ctx context.Context, prompt string) bool {
	c.asked++
	return c.accept
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}
