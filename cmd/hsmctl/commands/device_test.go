package commands

import (
	"io"
	"log/slog"
	"reflect"
	"testing"

	hsm "github.com/devicesmith/jcpm-hsm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sameHandler(a, b hsm.Handler) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

func newTestDevice() (d *device, m *hsm.HSM, doorClosed, baking, off, doorOpen hsm.Handler) {
	d = &device{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	doorClosed, baking, off, doorOpen = d.handlers()
	si := hsm.NewStateInstance(hsm.DefaultQueueCapacity)
	m = hsm.New(si)
	m.SetInitialState(doorClosed)
	return d, m, doorClosed, baking, off, doorOpen
}

func TestDeviceBakeThenOpenThenCloseReturnsToOff(t *testing.T) {
	_, m, _, baking, off, _ := newTestDevice()

	require.True(t, m.Instance().Post(SigBake))
	m.Process()
	assert.True(t, sameHandler(m.CurrentHandler(), baking))

	require.True(t, m.Instance().Post(SigOpen))
	m.Process()
	require.True(t, m.Instance().Post(SigClose))
	m.Process()
	assert.True(t, sameHandler(m.CurrentHandler(), off), "closing the door lands on the composite's default child")
}

func TestDeviceDoorOpenTracksOpenCount(t *testing.T) {
	d, m, _, _, _, _ := newTestDevice()
	for i := 0; i < 3; i++ {
		require.True(t, m.Instance().Post(SigOpen))
		m.Process()
		require.True(t, m.Instance().Post(SigClose))
		m.Process()
	}
	assert.Equal(t, 3, d.opened)
}

func TestDeviceRefusesToOpenAfterWearOut(t *testing.T) {
	d, m, _, _, _, _ := newTestDevice()
	d.opened = 100

	require.True(t, m.Instance().Post(SigOpen))
	m.Process()

	assert.Equal(t, 100, d.opened, "a refused open must not fire the ENTRY that increments opened")
}
