package sig

import (
	"os"
	"os/signal"
	"syscall"
)

// TermSignals reports SIGTERM and SIGINT. The channel is buffered so a
// signal arriving before the first read is not lost.
func TermSignals() <-chan os.Signal {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT)
	return ch
}
