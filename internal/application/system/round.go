package system

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/younwookim/codewave/internal/domain/entity"
	"github.com/younwookim/codewave/internal/infrastructure/config"
)

// ErrUnknownLetter is returned when collecting a letter the stage lacks.
var ErrUnknownLetter = errors.New("unknown letter")

// AllCollectedMessage is announced once the word is complete.
const AllCollectedMessage = "All letters collected! Cross those waves!"

// BoatChange describes how the player's boat state changed in a frame.
type BoatChange int

const (
	BoatUnchanged BoatChange = iota
	BoatBoarded
	BoatLanded
)

// Outcome summarizes one Step.
type Outcome struct {
	Collected []*entity.Letter
	Completed bool // the word became complete this frame
	Hit       bool
	Boat      BoatChange
	Finished  bool
}

// Round is one play-through of one level: the player's position, the word
// progress, the enemies and the clock.
type Round struct {
	stage  *entity.Stage
	cfg    *config.GameConfig
	preset config.DifficultyPreset
	rng    entity.Picker

	player   *entity.Player
	word     *entity.WordProgress
	elapsed  time.Duration
	hits     int
	finished bool
}

// NewRound places the player on the spawn point and sets every hovercraft
// moving. A nil rng uses a time-seeded source.
func NewRound(stage *entity.Stage, cfg *config.GameConfig, difficulty config.Difficulty, rng entity.Picker) *Round {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	r := &Round{
		stage:  stage,
		cfg:    cfg,
		preset: cfg.Preset(difficulty),
		rng:    rng,
		player: entity.NewPlayer(stage.Spawn, cfg.Player.BodyWidth, cfg.Player.BodyHeight),
		word:   entity.NewWordProgress(stage.Word),
	}
	for _, e := range stage.Enemies {
		if e.Moves() {
			e.Turn(r.rng, r.enemySpeed())
			e.TurnTimer = r.turnInterval()
		}
	}
	return r
}

func (r *Round) enemySpeed() float64 {
	return r.cfg.Enemies.HovercraftSpeed * r.preset.EnemySpeed
}

func (r *Round) turnInterval() float64 {
	return r.cfg.Enemies.TurnInterval * r.preset.TurnInterval
}

func (r *Round) Stage() *entity.Stage {
	return r.stage
}

func (r *Round) Player() *entity.Player {
	return r.player
}

func (r *Round) Word() *entity.WordProgress {
	return r.word
}

// Elapsed returns the time played so far.
func (r *Round) Elapsed() time.Duration {
	return r.elapsed
}

// Hits returns how many times the player touched an enemy.
func (r *Round) Hits() int {
	return r.hits
}

func (r *Round) Finished() bool {
	return r.finished
}

// Tick advances the clock and the enemies by dt. The clock stops once the
// round is finished.
func (r *Round) Tick(dt time.Duration) {
	if r.finished {
		return
	}
	r.elapsed += dt

	secs := dt.Seconds()
	maxX := float64(r.stage.PixelWidth())
	maxY := float64(r.stage.PixelHeight())
	for _, e := range r.stage.Enemies {
		if !e.Moves() {
			continue
		}
		e.TurnTimer -= secs
		if e.TurnTimer <= 0 {
			e.Turn(r.rng, r.enemySpeed())
			e.TurnTimer = r.turnInterval()
		}
		e.Step(secs)
		e.Pos.X = clamp(e.Pos.X, 0, maxX-e.Size.X)
		e.Pos.Y = clamp(e.Pos.Y, 0, maxY-e.Size.Y)
	}
}

// Move walks the player for dt along the input direction. Each axis moves
// separately so the player slides along walls.
func (r *Round) Move(dx, dy int, dt time.Duration) BoatChange {
	p := r.player
	v := entity.Velocity(dx, dy, r.cfg.Player.Speed, r.cfg.Player.DiagonalFactor)
	step := v.Scale(dt.Seconds())

	if next := (entity.Vec2{X: p.Pos.X + step.X, Y: p.Pos.Y}); step.X != 0 && r.fits(next) {
		p.Pos = next
	}
	if next := (entity.Vec2{X: p.Pos.X, Y: p.Pos.Y + step.Y}); step.Y != 0 && r.fits(next) {
		p.Pos = next
	}

	switch {
	case dx < 0:
		p.FacingLeft = true
	case dx > 0:
		p.FacingLeft = false
	}
	p.Moving = dx != 0 || dy != 0

	c := p.Center()
	return r.OnWater(c.X, c.Y)
}

func (r *Round) fits(pos entity.Vec2) bool {
	for _, c := range r.player.Corners(pos) {
		if r.stage.IsBlocked(c.X, c.Y, r.CanEnterWater()) {
			return false
		}
	}
	return true
}

// CollectLetter picks up the letter with the given id. Collecting a letter
// twice is a no-op and reports false.
func (r *Round) CollectLetter(id entity.EntityID) (bool, error) {
	for _, l := range r.stage.Letters {
		if l.ID != id {
			continue
		}
		if l.Collected {
			return false, nil
		}
		l.Collected = true
		r.word.Collect(l.Char)
		return true, nil
	}
	return false, fmt.Errorf("%w: %d", ErrUnknownLetter, id)
}

// HitEnemy sends the player back to the spawn point.
func (r *Round) HitEnemy() {
	r.hits++
	r.player.Pos = r.stage.Spawn
	r.player.InBoat = false
}

// CanEnterWater reports whether the word is complete.
func (r *Round) CanEnterWater() bool {
	return r.word.Complete()
}

// OnWater updates the boat flag for a player standing at the pixel.
func (r *Round) OnWater(px, py float64) BoatChange {
	inBoat := r.CanEnterWater() && r.stage.IsWater(px, py)
	if inBoat == r.player.InBoat {
		return BoatUnchanged
	}
	r.player.InBoat = inBoat
	if inBoat {
		return BoatBoarded
	}
	return BoatLanded
}

// CheckGoal finishes the round when the pixel is on the goal and the word
// is complete.
func (r *Round) CheckGoal(px, py float64) bool {
	if r.finished {
		return true
	}
	if !r.CanEnterWater() || !r.stage.IsGoal(px, py) {
		return false
	}
	r.finished = true
	return true
}

// Step runs one frame: movement, enemies, pickups, hits and the goal.
func (r *Round) Step(dx, dy int, dt time.Duration) Outcome {
	var out Outcome
	if r.finished {
		out.Finished = true
		return out
	}

	out.Boat = r.Move(dx, dy, dt)
	r.Tick(dt)

	p := r.player
	wasComplete := r.CanEnterWater()
	for _, l := range r.stage.Letters {
		if l.Collected || !l.Overlaps(p.Pos, p.Size) {
			continue
		}
		if ok, _ := r.CollectLetter(l.ID); ok {
			out.Collected = append(out.Collected, l)
		}
	}
	out.Completed = !wasComplete && r.CanEnterWater()

	for _, e := range r.stage.Enemies {
		if e.Overlaps(p.Pos, p.Size) {
			r.HitEnemy()
			out.Hit = true
			break
		}
	}

	c := p.Center()
	out.Finished = r.CheckGoal(c.X, c.Y)
	return out
}

// Announcement returns the banner text shown once every letter is in, or an
// empty string before that.
func (r *Round) Announcement() string {
	if r.CanEnterWater() {
		return AllCollectedMessage
	}
	return ""
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
