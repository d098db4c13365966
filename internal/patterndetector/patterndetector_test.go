package patterndetector

import (
	"testing"

	hsm "github.com/devicesmith/jcpm-hsm"
	"github.com/devicesmith/jcpm-hsm/internal/clock"
	"github.com/stretchr/testify/assert"
)

const patternSignal = hsm.SignalUser

type fakePoster struct {
	posted []hsm.Signal
}

func (p *fakePoster) Post(signal hsm.Signal) bool {
	p.posted = append(p.posted, signal)
	return true
}

func TestDetectorMatchesShortLongShortPattern(t *testing.T) {
	poster := &fakePoster{}
	fc := clock.NewFake()
	d := New(poster, fc, []bool{false, true, false}, patternSignal)

	press := func(switchID uint8, downAt, upAt uint32) {
		fc.Set(downAt)
		d.OnButtonDown(switchID)
		fc.Set(upAt)
		d.OnButtonUp(switchID)
	}

	press(1, 0, 50)    // short
	press(1, 60, 600)  // long
	press(1, 610, 650) // short, completes the pattern

	assert.Equal(t, []hsm.Signal{patternSignal}, poster.posted)
}

func TestDetectorMismatchResets(t *testing.T) {
	poster := &fakePoster{}
	fc := clock.NewFake()
	d := New(poster, fc, []bool{true, true}, patternSignal)

	fc.Set(0)
	d.OnButtonDown(1)
	fc.Set(50) // short, pattern wants long first: mismatch, resets
	d.OnButtonUp(1)

	fc.Set(100)
	d.OnButtonDown(1)
	fc.Set(700) // long
	d.OnButtonUp(1)

	fc.Set(800)
	d.OnButtonDown(1)
	fc.Set(1500) // long, completes the (reset) 2-long pattern
	d.OnButtonUp(1)

	assert.Equal(t, []hsm.Signal{patternSignal}, poster.posted)
}

func TestDetectorTimeoutResetsInProgressSequence(t *testing.T) {
	poster := &fakePoster{}
	fc := clock.NewFake()
	d := New(poster, fc, []bool{false, false}, patternSignal, WithPatternTimeoutMs(100))

	fc.Set(0)
	d.OnButtonDown(1)
	fc.Set(10) // short, matches pattern[0]
	d.OnButtonUp(1)

	fc.Set(500) // well past the 100ms timeout window
	d.OnButtonDown(1)
	fc.Set(510) // short, but the sequence should have reset first
	d.OnButtonUp(1)

	assert.Empty(t, poster.posted, "a single short press after timeout reset must not complete a 2-element pattern")
}

func TestDetectorReset(t *testing.T) {
	poster := &fakePoster{}
	fc := clock.NewFake()
	d := New(poster, fc, []bool{false, false}, patternSignal)

	fc.Set(0)
	d.OnButtonDown(1)
	fc.Set(10)
	d.OnButtonUp(1)

	d.Reset()

	fc.Set(20)
	d.OnButtonDown(1)
	fc.Set(30)
	d.OnButtonUp(1)

	assert.Empty(t, poster.posted, "after Reset, a single short press must not complete the pattern early")
}
