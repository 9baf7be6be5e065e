// Command spscbench runs a single-process producer/consumer burst over a
// ring channel and reports throughput. It exercises the same code path as
// the cross-process cmd/shmpipe demo, minus the shared-memory allocation.
package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/spf13/pflag"

	"github.com/ringlib/shmring/internal/logging"
	"github.com/ringlib/shmring/ring"
)

func main() {
	capacity := pflag.Uint64("capacity", 4096, "ring capacity, in elements")
	count := pflag.Int("count", 1_000_000, "number of elements to send")
	prodLog := pflag.Bool("prod-log", false, "use production logging config")
	pflag.Parse()

	logger, flush := logging.New(*prodLog)
	defer flush()

	layout, err := ring.LayoutFor[uint64](*capacity)
	if err != nil {
		logger.Error("layout failed", "error", err)
		return
	}

	region := make([]byte, layout.TotalBytes)
	producer, consumer, err := ring.Init[uint64](region, *capacity)
	if err != nil {
		logger.Error("init failed", "error", err)
		return
	}

	var wg sync.WaitGroup
	wg.Add(2)

	start := time.Now()

	go func() {
		defer wg.Done()
		ring.SendItemsBlocking(producer, *count, func(i int) uint64 { return uint64(i) })
	}()

	received := 0
	go func() {
		defer wg.Done()
		received = ring.RecvItemsBlocking(consumer, *count, func(i int, v uint64) {})
	}()

	wg.Wait()
	elapsed := time.Since(start)

	fmt.Printf("capacity=%d count=%d received=%d elapsed=%s throughput=%.0f elements/sec\n",
		*capacity, *count, received, elapsed, float64(*count)/elapsed.Seconds())
}
