package interactive

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdrhost/dboard-go/pkg/dboard"
	"github.com/sdrhost/dboard-go/pkg/dboard/basic"
	"github.com/sdrhost/dboard-go/pkg/inspect"
	"github.com/sdrhost/dboard-go/pkg/manager"
)

func newTestShell(t *testing.T) (*Shell, *bytes.Buffer) {
	t.Helper()
	reg := dboard.NewRegistry()
	require.NoError(t, basic.Register(reg))

	a, err := manager.New(reg, basic.IDLFRX, basic.IDLFTX, manager.Config{Slot: "A"})
	require.NoError(t, err)
	b, err := manager.New(reg, basic.IDBasicRX, dboard.IDNone, manager.Config{Slot: "B"})
	require.NoError(t, err)

	var out bytes.Buffer
	return NewBatch(inspect.NewInspector(a, b), &out), &out
}

func run(t *testing.T, s *Shell, out *bytes.Buffer, line string) string {
	t.Helper()
	out.Reset()
	assert.True(t, s.Execute(context.Background(), line), "command %q should not exit", line)
	return out.String()
}

func TestShellGet(t *testing.T) {
	s, out := newTestShell(t)

	assert.Equal(t, "frequency-range[AB] = [32 MHz, -32 MHz]\n", run(t, s, out, "get rx/AB/frequency-range"))
	assert.Equal(t, "name[A] = \"LF RX (0x000f) - A\"\n", run(t, s, out, "get rx/A/name"))
	assert.Equal(t, "quadrature[B] = false\n", run(t, s, out, "g rx/B/quad"))
	assert.Equal(t, "frequency-range[AB] = [90 GHz, -90 GHz]\n", run(t, s, out, "get B/rx/AB/frequency-range"))
	assert.Equal(t, "gain = 0 dB\n", run(t, s, out, "get tx/gain"))
}

func TestShellGetErrors(t *testing.T) {
	s, out := newTestShell(t)

	assert.Contains(t, run(t, s, out, "get"), "Usage: get <path>")
	assert.Contains(t, run(t, s, out, "get rx/AB"), "Path must name a property")
	assert.Contains(t, run(t, s, out, "get rx/AB/volume"), "Invalid path")
	assert.Contains(t, run(t, s, out, "get rx/C/name"), "Error:")
	assert.Contains(t, run(t, s, out, "get Z/rx/AB/name"), "slot not found")
	assert.Contains(t, run(t, s, out, "get B/tx/name"), "Error:")
}

func TestShellSet(t *testing.T) {
	s, out := newTestShell(t)

	assert.Equal(t, "OK\n", run(t, s, out, "set rx/A/gain 0"))
	assert.Equal(t, "OK\n", run(t, s, out, "set tx/frequency 1e6"))
	assert.Equal(t, "OK\n", run(t, s, out, `set rx/AB/antenna ""`))

	assert.Contains(t, run(t, s, out, "set rx/A/gain 5"), "Set failed: invalid property value")
	assert.Contains(t, run(t, s, out, "set tx/antenna J2"), "Set failed: invalid property value")
	assert.Contains(t, run(t, s, out, "set rx/AB/iq-swapped true"), "Set failed: property is read-only")
	assert.Contains(t, run(t, s, out, "set rx/A/gain loud"), "Set failed")
	assert.Contains(t, run(t, s, out, "set rx/A/gain"), "Usage: set <path> <value>")
}

func TestShellInspect(t *testing.T) {
	s, out := newTestShell(t)

	all := run(t, s, out, "inspect")
	assert.Contains(t, all, "Slot: A")
	assert.Contains(t, all, "Slot: B")
	assert.Contains(t, all, "rx: LF RX (0x000f)")
	assert.Contains(t, all, "tx: none")
	assert.Contains(t, all, "(no sub-devices)")

	slot := run(t, s, out, "inspect B")
	assert.Contains(t, slot, "Slot: B")
	assert.NotContains(t, slot, "Slot: A")

	unit := run(t, s, out, "i rx")
	assert.Contains(t, unit, "rx: LF RX (0x000f)")
	assert.Equal(t, 3, strings.Count(unit, "subdev "))

	sub := run(t, s, out, "inspect rx/AB")
	assert.True(t, strings.HasPrefix(sub, `subdev "AB"`), sub)
	assert.Contains(t, sub, "quadrature = true (bool, read-only)")
	assert.Contains(t, sub, "gain = 0 dB (float32, read-write)")

	assert.Equal(t, "iq-swapped = false\n", run(t, s, out, "inspect tx/iq-swapped"))
	assert.Contains(t, run(t, s, out, "inspect rx//AB"), "Invalid path")
}

func TestShellTable(t *testing.T) {
	s, out := newTestShell(t)

	table := run(t, s, out, "table rx/A")
	assert.Contains(t, table, "frequency-range")
	assert.Contains(t, table, "use-lo-offset")
	assert.Contains(t, run(t, s, out, "table rx/A/gain"), "Path must name a unit or sub-device")
	assert.Contains(t, run(t, s, out, "table rx"), "Error:")
}

func TestShellRemoteGet(t *testing.T) {
	s, out := newTestShell(t)

	assert.Equal(t, "frequency-range[AB] = [32 MHz, -32 MHz]\n", run(t, s, out, "rget rx/AB/frequency-range"))

	all := run(t, s, out, "rget rx/B")
	assert.Contains(t, all, "  name: \"LF RX (0x000f) - B\"")
	assert.Contains(t, all, "  quadrature: false")

	assert.Contains(t, run(t, s, out, "rget rx/C/name"), "Error:")
}

func TestShellListings(t *testing.T) {
	s, out := newTestShell(t)

	slots := run(t, s, out, "slots")
	assert.Contains(t, slots, "Slots (2):")
	assert.Contains(t, slots, "  A (default)")
	assert.Contains(t, slots, "  B\n")

	ids := run(t, s, out, "ids")
	assert.Contains(t, ids, "0x000f")
	assert.Contains(t, ids, "LF TX (0x000e)")
	assert.Contains(t, ids, "Basic RX (0x0001)")

	keys := run(t, s, out, "keys")
	assert.Contains(t, keys, "frequency-range")
	assert.Contains(t, keys, "read-write")
	assert.Equal(t, 13, strings.Count(keys, "\n"))
}

func TestShellHelpUnknownQuit(t *testing.T) {
	s, out := newTestShell(t)

	assert.Contains(t, run(t, s, out, "help"), "dboard Shell Commands")
	assert.Contains(t, run(t, s, out, "bogus"), "Unknown command: bogus")
	assert.Empty(t, run(t, s, out, "   "))

	out.Reset()
	assert.False(t, s.Execute(context.Background(), "quit"))
	assert.Equal(t, "Exiting...\n", out.String())
}

func TestPathCandidates(t *testing.T) {
	s, _ := newTestShell(t)

	paths := s.pathCandidates()
	assert.Contains(t, paths, "rx")
	assert.Contains(t, paths, "rx/AB")
	assert.Contains(t, paths, "rx/AB/frequency-range")
	assert.Contains(t, paths, "tx/gain")
	assert.Contains(t, paths, "B")
	assert.Contains(t, paths, "B/rx/A/name")
	assert.NotContains(t, paths, "B/tx/gain")
	assert.NotContains(t, paths, "A/rx")
}
