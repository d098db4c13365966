// Package patterndetector recognizes a fixed sequence of short/long button
// presses and posts a signal to the owning state machine when the sequence
// completes, ported from the original firmware's PatternPressDetector: a
// plain event producer sitting outside the core engine, talking to it only
// through Post.
package patterndetector

import (
	hsm "github.com/devicesmith/jcpm-hsm"
)

const (
	// DefaultShortPressMaxMs is the default boundary below which a press
	// counts as "short"; above it, "long".
	DefaultShortPressMaxMs = 400
	// DefaultPatternTimeoutMs is the default window within which the full
	// pattern must complete before the in-progress sequence resets.
	DefaultPatternTimeoutMs = 2000
)

// Poster is the subset of StateInstance the detector needs: posting a
// signal into the owning instance's queue. Decoupling from *hsm.StateInstance
// directly keeps this package testable without a live HSM.
type Poster interface {
	Post(signal hsm.Signal) bool
}

// Clock supplies the detector's notion of current time.
type Clock interface {
	NowMs() uint32
}

// Option configures a Detector at construction time.
type Option func(*Detector)

// WithShortPressMaxMs overrides DefaultShortPressMaxMs.
func WithShortPressMaxMs(ms uint32) Option {
	return func(d *Detector) { d.shortPressMaxMs = ms }
}

// WithPatternTimeoutMs overrides DefaultPatternTimeoutMs.
func WithPatternTimeoutMs(ms uint32) Option {
	return func(d *Detector) { d.patternTimeoutMs = ms }
}

// Detector matches a sequence of button presses, classified short/long,
// against a fixed pattern and posts patternSignal to target once the full
// pattern is matched within the timeout window.
type Detector struct {
	target           Poster
	clock            Clock
	pattern          []bool
	patternSignal    hsm.Signal
	shortPressMaxMs  uint32
	patternTimeoutMs uint32

	count         int
	sequenceStart uint32
	lastDownTime  map[uint8]uint32
}

// New returns a Detector that posts patternSignal to target once a button
// down/up sequence matches pattern, where pattern[i] == true means a long
// press at position i and false means a short press.
func New(target Poster, c Clock, pattern []bool, patternSignal hsm.Signal, opts ...Option) *Detector {
	d := &Detector{
		target:           target,
		clock:            c,
		pattern:          pattern,
		patternSignal:    patternSignal,
		shortPressMaxMs:  DefaultShortPressMaxMs,
		patternTimeoutMs: DefaultPatternTimeoutMs,
		lastDownTime:     make(map[uint8]uint32),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// OnButtonDown records the press start time for switchID.
func (d *Detector) OnButtonDown(switchID uint8) {
	d.lastDownTime[switchID] = d.clock.NowMs()
}

// OnButtonUp closes out the press for switchID, classifies it short or
// long, and advances the pattern match. A mismatch, or an elapsed sequence
// window, resets the in-progress match; a complete match posts
// patternSignal and resets.
func (d *Detector) OnButtonUp(switchID uint8) {
	now := d.clock.NowMs()
	duration := now - d.lastDownTime[switchID]
	delete(d.lastDownTime, switchID)

	if d.count == 0 {
		d.sequenceStart = now
	} else if now-d.sequenceStart > d.patternTimeoutMs {
		d.Reset()
		d.sequenceStart = now
	}

	isLong := duration > d.shortPressMaxMs
	if d.pattern[d.count] == isLong {
		d.count++
		if d.count == len(d.pattern) {
			d.target.Post(d.patternSignal)
			d.Reset()
		}
	} else {
		d.Reset()
	}
}

// Reset clears the in-progress match without affecting in-flight button
// down times.
func (d *Detector) Reset() {
	d.count = 0
	d.sequenceStart = 0
}
