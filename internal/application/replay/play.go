package replay

import (
	"math/rand/v2"
	"time"

	"github.com/younwookim/codewave/internal/application/system"
)

// DefaultFPS is used when a recording does not name its frame rate.
const DefaultFPS = 60

// Result summarizes a replayed round.
type Result struct {
	Frames    int
	Finished  bool
	Elapsed   time.Duration
	Hits      int
	Collected string
}

// RNG returns the deterministic random source for a recording's seed.
func RNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// FrameDuration returns the time step of one recorded frame.
func (d Data) FrameDuration() time.Duration {
	fps := d.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// Play feeds every recorded frame into round until the inputs run out or the
// round finishes.
func Play(round *system.Round, r *Replayer, dt time.Duration) Result {
	var res Result
	for !round.Finished() {
		fi, ok := r.Next()
		if !ok {
			break
		}
		dx, dy := fi.Direction()
		round.Step(dx, dy, dt)
		res.Frames++
	}

	res.Finished = round.Finished()
	res.Elapsed = round.Elapsed()
	res.Hits = round.Hits()
	res.Collected = round.Word().Collected()
	return res
}
