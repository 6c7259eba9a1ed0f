package game

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/uju/internal/config"
	"github.com/vovakirdan/uju/internal/core"
	"github.com/vovakirdan/uju/internal/particles"
)

const eps = 1e-9

var (
	testScreen = core.V(400, 600)
	epoch      = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
)

// recorder is a Renderer that remembers what it was asked to draw.
type recorder struct {
	cleared   int
	texts     []string
	prompts   []string
	promptPos core.Vec2
	rocketPos core.Vec2
	rocketSz  core.Vec2
	particles int
	fireDrawn bool
}

func (r *recorder) Clear() { r.cleared++ }

func (r *recorder) DrawText(text string, x, y float64) {
	r.texts = append(r.texts, text)
}

func (r *recorder) DrawPrompt(text string, pos, size core.Vec2) {
	r.prompts = append(r.prompts, text)
	r.promptPos = pos
}

func (r *recorder) DrawRocket(pos, size core.Vec2) {
	r.rocketPos = pos
	r.rocketSz = size
}

func (r *recorder) DrawParticles(ps []particles.Particle) {
	r.fireDrawn = true
	r.particles = len(ps)
}

// clock hands out frame timestamps at a fixed interval.
type clock struct {
	now  time.Time
	step time.Duration
}

func (c *clock) next() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	a, err := New(config.DefaultRocketConfig(), testScreen, 1)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return a
}

func frameAt(now time.Time, actions ...core.Action) Frame {
	return Frame{Now: now, ScreenSize: testScreen, Input: core.InputOf(actions...)}
}

// playingApp returns an app that has gone Init -> Idle -> Playing.
func playingApp(t *testing.T, c *clock) *App {
	t.Helper()
	a := newTestApp(t)
	a.Step(frameAt(c.next()))
	a.Step(frameAt(c.next(), core.ActionPlay))
	if a.State() != StatePlaying {
		t.Fatalf("setup: state = %v, expected playing", a.State())
	}
	return a
}

func TestNewInitialState(t *testing.T) {
	a := newTestApp(t)

	if a.State() != StateInit {
		t.Errorf("State() = %v, expected init", a.State())
	}
	if a.Position() != core.V(150, 550) {
		t.Errorf("Position() = %v, expected (150, 550)", a.Position())
	}
	if a.Velocity() != (core.Vec2{}) {
		t.Errorf("Velocity() = %v, expected zero", a.Velocity())
	}
}

func TestNewRejectsBadFireColors(t *testing.T) {
	cfg := config.DefaultRocketConfig()
	cfg.Fire.Colors.Start = "magenta"

	if _, err := New(cfg, testScreen, 1); err == nil {
		t.Error("expected error for invalid fire colors")
	}
}

func TestInitBootstrapsToIdle(t *testing.T) {
	a := newTestApp(t)
	a.Step(frameAt(epoch, core.ActionPlay))

	// Play on the very first frame is consumed by Init -> Idle
	if a.State() != StateIdle {
		t.Errorf("State() = %v, expected idle after first step", a.State())
	}
}

func TestTransitionTable(t *testing.T) {
	inputs := []core.Action{
		core.ActionNone,
		core.ActionUp,
		core.ActionDown,
		core.ActionLeft,
		core.ActionRight,
		core.ActionPlay,
		core.ActionPause,
		core.ActionQuit,
	}

	expected := map[State]map[core.Action]State{
		StateInit: {
			core.ActionNone: StateIdle, core.ActionUp: StateIdle, core.ActionDown: StateIdle,
			core.ActionLeft: StateIdle, core.ActionRight: StateIdle, core.ActionPlay: StateIdle,
			core.ActionPause: StateIdle, core.ActionQuit: StateIdle,
		},
		StateIdle: {
			core.ActionNone: StateIdle, core.ActionUp: StateIdle, core.ActionDown: StateIdle,
			core.ActionLeft: StateIdle, core.ActionRight: StateIdle, core.ActionPlay: StatePlaying,
			core.ActionPause: StateIdle, core.ActionQuit: StateIdle,
		},
		StatePlaying: {
			core.ActionNone: StatePlaying, core.ActionUp: StatePlaying, core.ActionDown: StatePlaying,
			core.ActionLeft: StatePlaying, core.ActionRight: StatePlaying, core.ActionPlay: StatePlaying,
			core.ActionPause: StatePaused, core.ActionQuit: StatePlaying,
		},
		StatePaused: {
			core.ActionNone: StatePaused, core.ActionUp: StatePaused, core.ActionDown: StatePaused,
			core.ActionLeft: StatePaused, core.ActionRight: StatePaused, core.ActionPlay: StatePlaying,
			core.ActionPause: StatePaused, core.ActionQuit: StatePaused,
		},
	}

	for from, row := range expected {
		for _, in := range inputs {
			t.Run(from.String()+"/"+in.String(), func(t *testing.T) {
				a := newTestApp(t)
				a.state = from

				a.Step(frameAt(epoch, in))

				if a.State() != row[in] {
					t.Errorf("%v + %v -> %v, expected %v", from, in, a.State(), row[in])
				}
			})
		}
	}
}

func TestTransitionsRecordKeyTime(t *testing.T) {
	c := &clock{now: epoch, step: 16 * time.Millisecond}
	a := newTestApp(t)

	a.Step(frameAt(c.next()))
	if !a.lastKeyPressedTime.IsZero() {
		t.Fatal("Init -> Idle should not record a key time")
	}

	playAt := c.next()
	a.Step(frameAt(playAt, core.ActionPlay))
	if !a.lastKeyPressedTime.Equal(playAt) {
		t.Errorf("play key time = %v, expected %v", a.lastKeyPressedTime, playAt)
	}

	pauseAt := c.next()
	a.Step(frameAt(pauseAt, core.ActionPause))
	if !a.lastKeyPressedTime.Equal(pauseAt) {
		t.Errorf("pause key time = %v, expected %v", a.lastKeyPressedTime, pauseAt)
	}

	resumeAt := c.next()
	a.Step(frameAt(resumeAt, core.ActionPlay))
	if a.State() != StatePlaying || !a.lastKeyPressedTime.Equal(resumeAt) {
		t.Errorf("resume: state = %v, key time = %v", a.State(), a.lastKeyPressedTime)
	}
}

func TestEndToEndScenario(t *testing.T) {
	c := &clock{now: epoch, step: 16 * time.Millisecond}
	a := newTestApp(t)
	a.position = core.V(195, 550)

	a.Step(frameAt(c.next()))
	if a.State() != StateIdle {
		t.Fatalf("state = %v after first dispatch, expected idle", a.State())
	}

	playAt := c.next()
	a.Step(frameAt(playAt, core.ActionPlay))
	if a.State() != StatePlaying {
		t.Fatalf("state = %v after play input, expected playing", a.State())
	}
	if !a.lastKeyPressedTime.Equal(playAt) {
		t.Errorf("lastKeyPressedTime = %v, expected %v", a.lastKeyPressedTime, playAt)
	}

	// Thrust -0.2 plus gravity +0.05
	a.Step(frameAt(c.next(), core.ActionUp))
	if math.Abs(a.Velocity().Y-(-0.15)) > eps {
		t.Errorf("velocity.y = %v, expected -0.15", a.Velocity().Y)
	}
	if math.Abs(a.Position().Y-549.85) > eps {
		t.Errorf("position.y = %v, expected 549.85", a.Position().Y)
	}
	if a.Position().X != 195 {
		t.Errorf("position.x = %v, expected unchanged 195", a.Position().X)
	}

	// Keep climbing: the top clamp holds the base at the rocket height.
	for i := 0; i < 2000; i++ {
		a.Step(frameAt(c.next(), core.ActionUp))
		if a.Position().Y < 200 {
			t.Fatalf("frame %d: position.y = %v went above the top clamp", i, a.Position().Y)
		}
	}
	if a.Position().Y != 200 {
		t.Errorf("position.y = %v, expected to rest at 200", a.Position().Y)
	}
}

func TestClampIdempotent(t *testing.T) {
	tests := []struct {
		name    string
		pos     core.Vec2
		vel     core.Vec2
		wantPos core.Vec2
		zeroX   bool
		zeroY   bool
	}{
		{"left edge", core.V(-20, 400), core.V(-3, 1), core.V(0, 400), true, false},
		{"right edge", core.V(390, 400), core.V(3, 1), core.V(300, 400), true, false},
		{"top edge", core.V(100, 50), core.V(1, -4), core.V(100, 200), false, true},
		{"bottom edge", core.V(100, 700), core.V(1, 4), core.V(100, 600), false, true},
		{"corner", core.V(-5, 900), core.V(-1, 2), core.V(0, 600), true, true},
		{"inside", core.V(100, 400), core.V(1, 1), core.V(100, 400), false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := newTestApp(t)
			a.position = tc.pos
			a.velocity = tc.vel

			a.clampToScreen()
			first := a.position
			a.clampToScreen()

			if a.position != first {
				t.Errorf("second clamp moved %v -> %v", first, a.position)
			}
			if a.position != tc.wantPos {
				t.Errorf("position = %v, expected %v", a.position, tc.wantPos)
			}
			if tc.zeroX && a.velocity.X != 0 {
				t.Errorf("velocity.x = %v, expected 0 after clamp", a.velocity.X)
			}
			if tc.zeroY && a.velocity.Y != 0 {
				t.Errorf("velocity.y = %v, expected 0 after clamp", a.velocity.Y)
			}
			if !tc.zeroX && a.velocity.X != tc.vel.X {
				t.Errorf("velocity.x changed to %v without a clamp", a.velocity.X)
			}
		})
	}
}

func TestClampFollowsScreenSize(t *testing.T) {
	c := &clock{now: epoch, step: 16 * time.Millisecond}
	a := playingApp(t, c)

	small := core.V(200, 300)
	a.Step(Frame{Now: c.next(), ScreenSize: small, Input: core.NewInputFrame()})

	if a.Position().X > small.X-100 || a.Position().Y > small.Y {
		t.Errorf("position %v outside the resized screen %v", a.Position(), small)
	}
}

func TestInputDecayMonotonic(t *testing.T) {
	c := &clock{now: epoch, step: 100 * time.Millisecond}
	a := playingApp(t, c)

	// Let the play key age past the decay delay.
	a.lastKeyPressedTime = c.now.Add(-2 * time.Second)
	a.velocity = core.V(-1.0, 0)

	prev := a.Velocity().X
	for i := 0; i < 20; i++ {
		a.Step(frameAt(c.next()))
		vx := a.Velocity().X
		if vx > 0 {
			t.Fatalf("tick %d: velocity.x = %v overshot past zero", i, vx)
		}
		if vx < prev {
			t.Fatalf("tick %d: velocity.x moved away from zero: %v -> %v", i, prev, vx)
		}
		prev = vx
	}
	if a.Velocity().X != 0 {
		t.Errorf("velocity.x = %v, expected exactly 0 after decay", a.Velocity().X)
	}
}

func TestInputDecayPositiveVelocity(t *testing.T) {
	c := &clock{now: epoch, step: 100 * time.Millisecond}
	a := playingApp(t, c)
	a.lastKeyPressedTime = time.Time{}
	a.position = core.V(100, 400)
	a.velocity = core.V(0.25, 0)

	a.Step(frameAt(c.next()))
	if math.Abs(a.Velocity().X-0.15) > eps {
		t.Errorf("velocity.x = %v, expected 0.15 after one tick", a.Velocity().X)
	}
	a.Step(frameAt(c.next()))
	a.Step(frameAt(c.next()))
	if a.Velocity().X != 0 {
		t.Errorf("velocity.x = %v, expected snap to 0", a.Velocity().X)
	}
}

func TestInputDecayWaitsForDelay(t *testing.T) {
	c := &clock{now: epoch, step: 100 * time.Millisecond}
	a := playingApp(t, c)
	a.velocity = core.V(-1.0, 0)

	// The play key was pressed one frame ago; 500ms is within the delay.
	for i := 0; i < 5; i++ {
		a.Step(frameAt(c.next()))
	}
	if a.Velocity().X != -1.0 {
		t.Errorf("velocity.x = %v, expected no decay within the delay", a.Velocity().X)
	}
}

func TestInputDecayGatedByTimer(t *testing.T) {
	c := &clock{now: epoch, step: 25 * time.Millisecond}
	a := playingApp(t, c)
	a.lastKeyPressedTime = time.Time{}
	a.position = core.V(100, 400)
	a.velocity = core.V(-1.0, 0)

	// 40 frames of 25ms = 1s = 10 ticks of the 10 Hz timer.
	for i := 0; i < 40; i++ {
		a.Step(frameAt(c.next()))
	}
	if math.Abs(a.Velocity().X) > eps {
		t.Errorf("velocity.x = %v, expected ~0 after ten ticks", a.Velocity().X)
	}

	a.velocity.X = -1.0
	for i := 0; i < 3; i++ {
		a.Step(frameAt(c.next()))
	}
	// 25ms carried over plus three frames reaches exactly one tick.
	if math.Abs(a.Velocity().X-(-0.9)) > eps {
		t.Errorf("velocity.x = %v, expected one decay step to -0.9", a.Velocity().X)
	}
}

func TestSteeringRefreshesKeyTime(t *testing.T) {
	c := &clock{now: epoch, step: 16 * time.Millisecond}
	a := playingApp(t, c)

	at := c.next()
	a.Step(frameAt(at, core.ActionRight))

	if !a.lastKeyPressedTime.Equal(at) {
		t.Errorf("lastKeyPressedTime = %v, expected %v", a.lastKeyPressedTime, at)
	}
	if math.Abs(a.Velocity().X-0.2) > eps {
		t.Errorf("velocity.x = %v, expected 0.2", a.Velocity().X)
	}
}

func TestOpposingKeysCancel(t *testing.T) {
	c := &clock{now: epoch, step: 16 * time.Millisecond}
	a := playingApp(t, c)
	a.position = core.V(100, 400)

	a.Step(frameAt(c.next(), core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown))

	if a.Velocity().X != 0 {
		t.Errorf("velocity.x = %v, expected 0", a.Velocity().X)
	}
	if math.Abs(a.Velocity().Y-0.05) > eps {
		t.Errorf("velocity.y = %v, expected gravity only", a.Velocity().Y)
	}
}

func TestPausedFreezesPhysics(t *testing.T) {
	c := &clock{now: epoch, step: 16 * time.Millisecond}
	a := playingApp(t, c)
	a.position = core.V(100, 400)
	a.velocity = core.V(2, -3)

	a.Step(frameAt(c.next(), core.ActionPause))
	if a.State() != StatePaused {
		t.Fatalf("state = %v, expected paused", a.State())
	}

	pos, vel := a.Position(), a.Velocity()
	for i := 0; i < 30; i++ {
		a.Step(frameAt(c.next(), core.ActionUp, core.ActionLeft))
	}
	if a.Position() != pos || a.Velocity() != vel {
		t.Errorf("paused rocket moved: %v/%v -> %v/%v", pos, vel, a.Position(), a.Velocity())
	}
}

func TestFPSSample(t *testing.T) {
	c := &clock{now: epoch, step: 20 * time.Millisecond}
	a := newTestApp(t)

	// The first frame has no delta, so the first sample includes it.
	for i := 0; i < 51; i++ {
		a.Step(frameAt(c.next()))
	}
	if a.FPS() != 51 {
		t.Errorf("first FPS sample = %d, expected 51", a.FPS())
	}

	for i := 0; i < 50; i++ {
		a.Step(frameAt(c.next()))
	}
	if a.FPS() != 50 {
		t.Errorf("second FPS sample = %d, expected 50", a.FPS())
	}
}

func TestNonMonotonicClockIgnored(t *testing.T) {
	a := newTestApp(t)
	a.Step(frameAt(epoch))
	a.Step(frameAt(epoch.Add(-time.Second)))

	if a.timer1Hz.Accumulated() != 0 {
		t.Errorf("backwards clock should contribute no time, got %v", a.timer1Hz.Accumulated())
	}
}

func TestFireFollowsPlayingState(t *testing.T) {
	c := &clock{now: epoch, step: 50 * time.Millisecond}
	a := playingApp(t, c)

	a.Step(frameAt(c.next()))
	a.Step(frameAt(c.next()))
	if !a.drawFire || a.emitter.Len() == 0 {
		t.Fatalf("fire should be active while playing (drawFire=%v, particles=%d)", a.drawFire, a.emitter.Len())
	}

	a.Step(frameAt(c.next(), core.ActionPause))
	if a.drawFire {
		t.Error("fire should stop when leaving playing")
	}

	r := &recorder{}
	a.Draw(r)
	if r.fireDrawn {
		t.Error("particles drawn while paused")
	}
}

func TestDrawIdle(t *testing.T) {
	a := newTestApp(t)
	a.Step(frameAt(epoch))

	r := &recorder{}
	a.Draw(r)

	if r.cleared != 1 {
		t.Errorf("Clear called %d times, expected 1", r.cleared)
	}
	if len(r.prompts) != 1 || r.prompts[0] != "Press [space] to play!" {
		t.Errorf("prompts = %v, expected the play prompt", r.prompts)
	}
	if r.promptPos != core.V(75, 275) {
		t.Errorf("prompt at %v, expected centred at (75, 275)", r.promptPos)
	}
	if r.fireDrawn {
		t.Error("particles should not be drawn while idle")
	}
	if r.rocketPos != core.V(150, 350) || r.rocketSz != core.V(100, 200) {
		t.Errorf("rocket drawn at %v size %v, expected (150, 350) size (100, 200)", r.rocketPos, r.rocketSz)
	}
}

func TestDrawPlayingAndPaused(t *testing.T) {
	c := &clock{now: epoch, step: 100 * time.Millisecond}
	a := playingApp(t, c)
	a.Step(frameAt(c.next()))

	r := &recorder{}
	a.Draw(r)
	if len(r.prompts) != 0 {
		t.Errorf("prompts = %v, expected none while playing", r.prompts)
	}
	if !r.fireDrawn || r.particles == 0 {
		t.Error("fire trail should be drawn while playing")
	}

	a.Step(frameAt(c.next(), core.ActionPause))
	r = &recorder{}
	a.Draw(r)
	if len(r.prompts) != 1 || r.prompts[0] != "Press [space] to resume." {
		t.Errorf("prompts = %v, expected the resume prompt", r.prompts)
	}
}

func TestHUDLines(t *testing.T) {
	c := &clock{now: epoch, step: 250 * time.Millisecond}
	a := newTestApp(t)
	for i := 0; i < 6; i++ {
		a.Step(frameAt(c.next()))
	}

	lines := a.HUDLines()
	if len(lines) != 4 {
		t.Fatalf("len(HUDLines()) = %d, expected 4", len(lines))
	}
	if lines[0] != "state: idle" {
		t.Errorf("state line = %q", lines[0])
	}
	if lines[1] != "uptime: 1.25s" {
		t.Errorf("uptime line = %q, expected 1.25s", lines[1])
	}
	if lines[2] != "fps: 5" {
		t.Errorf("fps line = %q, expected 5", lines[2])
	}
	if !strings.Contains(lines[3], "space") {
		t.Errorf("help line = %q", lines[3])
	}
}

func TestDispatchStepsThenDraws(t *testing.T) {
	a := newTestApp(t)
	r := &recorder{}

	a.Dispatch(frameAt(epoch), r)

	if a.State() != StateIdle {
		t.Errorf("State() = %v, expected idle", a.State())
	}
	if len(r.texts) == 0 || r.texts[0] != "state: idle" {
		t.Errorf("HUD should reflect the stepped state, got %v", r.texts)
	}
}

func TestDecayTowardZero(t *testing.T) {
	tests := []struct {
		v, step, want float64
	}{
		{1.0, 0.1, 0.9},
		{-1.0, 0.1, -0.9},
		{0.05, 0.1, 0},
		{-0.05, 0.1, 0},
		{0.1, 0.1, 0},
		{0, 0.1, 0},
	}

	for _, tc := range tests {
		if got := decayTowardZero(tc.v, tc.step); math.Abs(got-tc.want) > eps {
			t.Errorf("decayTowardZero(%v, %v) = %v, expected %v", tc.v, tc.step, got, tc.want)
		}
	}
}
