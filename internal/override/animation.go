package override

import "time"

// Element is the rendered cue node the animation hooks act on.
type Element interface {
	SetOpacity(opacity float64)
}

// Animator tweens an element's opacity and calls done when finished. The
// renderer owns timing and cancellation.
type Animator interface {
	Animate(el Element, opacity float64, duration time.Duration, done func())
}

// Fade describes a fade-in-then-out animation in milliseconds.
type Fade struct {
	InMS  float64 `json:"in_ms" yaml:"in_ms" msgpack:"in_ms"`
	OutMS float64 `json:"out_ms" yaml:"out_ms" msgpack:"out_ms"`
}

func (f *Fade) In() time.Duration  { return millis(f.InMS) }
func (f *Fade) Out() time.Duration { return millis(f.OutMS) }

func millis(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}

// BeforeEnter hides the element ahead of the enter transition.
func (f *Fade) BeforeEnter(el Element) {
	el.SetOpacity(0)
}

// Enter reveals the element over the fade-in duration.
func (f *Fade) Enter(a Animator, el Element, done func()) {
	a.Animate(el, 1, f.In(), done)
}

// Leave hides the element over the fade-out duration.
func (f *Fade) Leave(a Animator, el Element, done func()) {
	a.Animate(el, 0, f.Out(), done)
}

// BeforeEnter runs the cue's before-enter hook, if it has one.
func (c *Cue) BeforeEnter(el Element) {
	if c.Animation == nil {
		return
	}
	c.Animation.BeforeEnter(el)
}

// Enter runs the cue's enter hook. Cues without animation finish at once.
func (c *Cue) Enter(a Animator, el Element, done func()) {
	if c.Animation == nil {
		if done != nil {
			done()
		}
		return
	}
	c.Animation.Enter(a, el, done)
}

// Leave runs the cue's leave hook and re-hides the cue once it completes so
// that seeking back can show it again.
func (c *Cue) Leave(a Animator, el Element, done func()) {
	complete := func() {
		if done != nil {
			done()
		}
		if c.HasAnimation {
			c.Show = false
		}
	}
	if c.Animation == nil {
		complete()
		return
	}
	c.Animation.Leave(a, el, complete)
}

// Rearm resets the transient visibility of an animated cue, e.g. after a seek.
func (c *Cue) Rearm() {
	if c.HasAnimation {
		c.Show = false
	}
}
