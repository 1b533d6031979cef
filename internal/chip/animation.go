package chip

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

// Phase is a step of the selection feedback animation.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseScalingUp
	PhaseSettlingBack
)

func (p Phase) String() string {
	switch p {
	case PhaseScalingUp:
		return "scaling-up"
	case PhaseSettlingBack:
		return "settling-back"
	default:
		return "idle"
	}
}

const (
	fps = 60

	// SelectedScale is the peak scale reached right after selection.
	SelectedScale = 1.15

	scaleUpDuration = 200 * time.Millisecond
	settleDuration  = 100 * time.Millisecond
)

// FrameMsg advances the feedback animation of the chip with the given ID.
// Hosts route it to that chip's Update.
type FrameMsg struct {
	ID  int
	seq int
}

// animator runs Idle -> ScalingUp -> SettlingBack -> Idle. Leaving
// ScalingUp consults the chip's selection at that moment: a chip deselected
// mid-animation goes straight back to Idle at rest scale.
//
// Alongside the scale it fades mix between the unselected (0) and selected
// (1) colors over scaleUpDuration, in both directions.
type animator struct {
	phase    Phase
	seq      int
	frames   int
	scale    float64
	velocity float64
	spring   harmonica.Spring

	mix       float64
	mixTarget float64
}

func newAnimator() animator {
	return animator{
		scale:  1,
		spring: harmonica.NewSpring(harmonica.FPS(fps), 18.0, 1.0),
	}
}

func framesFor(d time.Duration) int {
	return int(math.Round(d.Seconds() * fps))
}

// start begins a new run. Frames still in flight from an earlier run carry
// an old seq and are ignored when they arrive.
func (a *animator) start(id int) tea.Cmd {
	a.seq++
	a.phase = PhaseScalingUp
	a.frames = framesFor(scaleUpDuration)
	a.mixTarget = 1
	log.Logf("%d animation %s", id, a.phase)
	return a.tick(id)
}

// fadeOut turns the colors back toward unselected. A run already in flight
// carries the fade; otherwise a new one starts.
func (a *animator) fadeOut(id int) tea.Cmd {
	wasRunning := a.running()
	a.mixTarget = 0
	if wasRunning || !a.running() {
		return nil
	}
	a.seq++
	return a.tick(id)
}

func (a *animator) running() bool {
	return a.phase != PhaseIdle || a.mix != a.mixTarget
}

func (a *animator) tick(id int) tea.Cmd {
	seq := a.seq
	return tea.Tick(time.Second/fps, func(time.Time) tea.Msg {
		return FrameMsg{ID: id, seq: seq}
	})
}

func (a *animator) step(id int, selected bool, msg FrameMsg) tea.Cmd {
	if msg.seq != a.seq || !a.running() {
		return nil
	}
	a.mix = approach(a.mix, a.mixTarget, 1/float64(framesFor(scaleUpDuration)))
	if a.phase != PhaseIdle {
		if cmd := a.stepScale(id, selected); cmd != nil {
			return cmd
		}
	}
	if a.running() {
		return a.tick(id)
	}
	return nil
}

func (a *animator) stepScale(id int, selected bool) tea.Cmd {
	target := 1.0
	if a.phase == PhaseScalingUp {
		target = SelectedScale
	}
	a.scale, a.velocity = a.spring.Update(a.scale, a.velocity, target)
	a.frames--
	if a.frames > 0 {
		return a.tick(id)
	}

	if a.phase == PhaseScalingUp && selected {
		a.scale = SelectedScale
		a.velocity = 0
		a.phase = PhaseSettlingBack
		a.frames = framesFor(settleDuration)
		log.Logf("%d animation %s", id, a.phase)
		return a.tick(id)
	}
	a.rest()
	log.Logf("%d animation %s", id, a.phase)
	return nil
}

func approach(v, target, delta float64) float64 {
	switch {
	case math.Abs(target-v) <= delta+1e-9:
		return target
	case v < target:
		return v + delta
	default:
		return v - delta
	}
}

func (a *animator) rest() {
	a.phase = PhaseIdle
	a.scale = 1
	a.velocity = 0
}

// AnimationPhase reports where the feedback animation is.
func (c *TagChip) AnimationPhase() Phase { return c.anim.phase }

// Scale is the chip's current feedback scale; 1 at rest.
func (c *TagChip) Scale() float64 { return c.anim.scale }

// ColorMix is how far the drawn colors are from the unselected pair (0)
// toward the selected pair (1).
func (c *TagChip) ColorMix() float64 { return c.anim.mix }
