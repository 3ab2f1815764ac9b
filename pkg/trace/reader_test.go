package trace

import (
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/sdrhost/dboard-go/pkg/dboard"
	"github.com/sdrhost/dboard-go/pkg/prop"
	"github.com/sdrhost/dboard-go/pkg/wire"
)

func writeEvents(t *testing.T, events ...Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.dtrace")
	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	if err := logger.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func readAll(t *testing.T, path string, filter Filter) []Event {
	t.Helper()
	reader, err := NewFilteredReader(path, filter)
	if err != nil {
		t.Fatal(err)
	}
	defer reader.Close()

	var out []Event
	for {
		e, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		out = append(out, e)
	}
}

func TestReaderFilter(t *testing.T) {
	base := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

	get := sampleEvent()
	get.Timestamp = base

	txSet := sampleEvent()
	txSet.Timestamp = base.Add(time.Second)
	txSet.Unit = dboard.UnitTX
	txSet.Subdev = ""
	txSet.Operation = wire.OpSet
	txSet.Key = prop.KeyGain
	txSet.Status = wire.StatusInvalidValue
	txSet.Error = "invalid property value"

	other := sampleEvent()
	other.Timestamp = base.Add(2 * time.Second)
	other.Slot = "B"
	other.SessionID = "other"

	path := writeEvents(t, get, txSet, other)

	unitTX := dboard.UnitTX
	opGet := wire.OpGet
	keyGain := prop.KeyGain
	start := base.Add(500 * time.Millisecond)
	end := base.Add(2 * time.Second)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"All", Filter{}, 3},
		{"Slot", Filter{Slot: "A"}, 2},
		{"Session", Filter{SessionID: "other"}, 1},
		{"Unit", Filter{Unit: &unitTX}, 1},
		{"Operation", Filter{Operation: &opGet}, 2},
		{"Key", Filter{Key: &keyGain}, 1},
		{"FailedOnly", Filter{FailedOnly: true}, 1},
		{"TimeWindow", Filter{TimeStart: &start, TimeEnd: &end}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := readAll(t, path, tt.filter); len(got) != tt.want {
				t.Errorf("expected %d events, got %d", tt.want, len(got))
			}
		})
	}
}

func TestReaderMissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "missing.dtrace")); err == nil {
		t.Error("expected error opening missing file")
	}
}
