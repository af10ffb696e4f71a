package engine

import (
	"fmt"
	"sync"
	"time"
)

// CalcTimeout is the hard limit for a single calculation.
const CalcTimeout = 5 * time.Second

// calcResult is the internal type used to pass results through channels.
type calcResult struct {
	result *Result
	err    error
}

// waitWithTimeout waits for a result from ch, but returns a timeout error
// if the calculation exceeds CalcTimeout. It uses a generation counter to
// discard stale results from previous calculations.
//
// On timeout, the goroutine may still be running; the generation check
// ensures its result is discarded when it eventually completes.
func waitWithTimeout(
	ch <-chan calcResult,
	gen uint64,
	mu *sync.Mutex,
	currentGen *uint64,
) (*Result, error) {
	timer := time.NewTimer(CalcTimeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		// Check if this result is still relevant (not stale).
		mu.Lock()
		current := *currentGen
		mu.Unlock()

		if gen != current {
			// A newer calculation was started; discard this result.
			return nil, fmt.Errorf("calculation superseded by newer request")
		}

		return res.result, res.err

	case <-timer.C:
		return nil, fmt.Errorf("calculation timed out after %s", CalcTimeout)
	}
}
