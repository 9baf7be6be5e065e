// Command shmpipe demonstrates scenario S5 for real: two OS processes
// exchanging a burst of elements over a POSIX shared-memory region. Run one
// process with --role server and another with --role client, both pointed at
// the same --segment name.
//
// Both sides poll ring.Producer/Consumer directly rather than going through
// the wakeup layer: an eventfd created by one process isn't usable by an
// unrelated process without passing the descriptor over a Unix socket with
// SCM_RIGHTS, which this demo doesn't do. wakeup's eventfd descriptor is
// exercised in-process instead, in wakeup's own tests.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/ringlib/shmring/internal/config"
	"github.com/ringlib/shmring/internal/logging"
	"github.com/ringlib/shmring/ring"
	"github.com/ringlib/shmring/shmalloc"
)

func main() {
	cfg := config.Load()

	role := pflag.String("role", "", "server (creates the segment) or client (opens it)")
	segment := pflag.String("segment", cfg.SegmentName, "shared memory segment name")
	capacity := pflag.Uint64("capacity", uint64(cfg.SegmentCapacity), "ring capacity, in elements")
	count := pflag.Int("count", 100_000, "number of elements the server sends")
	pflag.Parse()

	logger, flush := logging.New(cfg.LogProd)
	defer flush()

	switch *role {
	case "server":
		runServer(logger, *segment, *capacity, *count)
	case "client":
		runClient(logger, *segment, *capacity, *count)
	default:
		fmt.Fprintln(os.Stderr, "usage: shmpipe --role server|client --segment NAME [--capacity N] [--count N]")
		os.Exit(2)
	}
}

func runServer(logger *slog.Logger, name string, capacity uint64, count int) {
	layout, err := ring.LayoutFor[uint64](capacity)
	if err != nil {
		logger.Error("layout failed", "error", err)
		os.Exit(1)
	}

	region, err := shmalloc.Create(name, int(layout.TotalBytes))
	if err != nil {
		logger.Error("create segment failed", "segment", name, "error", err)
		os.Exit(1)
	}
	defer region.Remove()
	defer region.Close()

	producer, _, err := ring.Init[uint64](region.Mem, capacity)
	if err != nil {
		logger.Error("init failed", "error", err)
		os.Exit(1)
	}

	logger.Info("server ready, waiting for client", "segment", name, "capacity", capacity)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	sent := 0
	for sent < count {
		n := ring.SendItems(producer, count-sent, func(i int) uint64 { return uint64(sent + i) })
		sent += n
		if n == 0 {
			select {
			case <-time.After(time.Millisecond):
			case <-ctx.Done():
				logger.Warn("timed out waiting for client to drain", "sent", sent, "want", count)
				logger.Info("server done", "sent", sent)
				return
			}
		}
	}

	logger.Info("server done", "sent", sent)
}

func runClient(logger *slog.Logger, name string, capacity uint64, count int) {
	layout, err := ring.LayoutFor[uint64](capacity)
	if err != nil {
		logger.Error("layout failed", "error", err)
		os.Exit(1)
	}

	region, err := shmalloc.Open(name, int(layout.TotalBytes))
	if err != nil {
		logger.Error("open segment failed", "segment", name, "error", err)
		os.Exit(1)
	}
	defer region.Close()

	_, consumer, err := ring.Attach[uint64](region.Mem, capacity)
	if err != nil {
		logger.Error("init failed", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	received := 0
	for received < count {
		n := ring.RecvItems(consumer, count-received, func(i int, v uint64) {})
		received += n
		if n == 0 {
			select {
			case <-time.After(time.Millisecond):
			case <-ctx.Done():
				logger.Warn("timed out waiting for data", "received", received, "want", count)
				return
			}
		}
	}

	logger.Info("client done", "received", received)
}
