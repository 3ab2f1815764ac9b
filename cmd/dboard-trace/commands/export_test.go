package commands

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sdrhost/dboard-go/pkg/dboard"
	"github.com/sdrhost/dboard-go/pkg/prop"
	"github.com/sdrhost/dboard-go/pkg/trace"
	"github.com/sdrhost/dboard-go/pkg/wire"
)

func exportFixture(t *testing.T) string {
	t.Helper()
	ts := time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)
	return createTestTraceFile(t, []trace.Event{
		getEvent(ts, dboard.UnitRX, "AB", prop.KeyName, prop.String("LF RX (0x000f) - AB")),
		failedSet(ts.Add(time.Second), prop.KeyGain, prop.Float32(5), wire.StatusInvalidValue, "bad gain"),
	})
}

func TestExportJSONL(t *testing.T) {
	path := exportFixture(t)
	out := filepath.Join(t.TempDir(), "out.jsonl")

	if err := RunExport(path, "jsonl", out, trace.Filter{}); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}

	var lines []map[string]any
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		var m map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &m); err != nil {
			t.Fatalf("invalid JSON line %q: %v", scanner.Text(), err)
		}
		lines = append(lines, m)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	first := lines[0]
	if first["unit"] != "rx" || first["board_id"] != "0x000f" || first["key"] != "name" ||
		first["operation"] != "Get" || first["kind"] != "string" {
		t.Errorf("unexpected first line %v", first)
	}
	if first["value"] != `"LF RX (0x000f) - AB"` {
		t.Errorf("value = %v", first["value"])
	}
	if _, ok := first["error"]; ok {
		t.Error("successful event must not carry error")
	}

	second := lines[1]
	if second["status"] != "INVALID_VALUE" || second["error"] != "bad gain" {
		t.Errorf("unexpected second line %v", second)
	}
}

func TestExportCSV(t *testing.T) {
	path := exportFixture(t)
	out := filepath.Join(t.TempDir(), "out.csv")

	failed := true
	if err := RunExport(path, "csv", out, trace.Filter{FailedOnly: failed}); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d", len(records))
	}
	if strings.Join(records[0], ",") != "timestamp,session_id,slot,unit,board_id,subdev,operation,key,value,status,error" {
		t.Errorf("unexpected header %v", records[0])
	}
	row := records[1]
	if row[3] != "tx" || row[7] != "gain" || row[8] != "5" || row[9] != "INVALID_VALUE" {
		t.Errorf("unexpected row %v", row)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	path := exportFixture(t)
	out := filepath.Join(t.TempDir(), "out.xml")
	if err := RunExport(path, "xml", out, trace.Filter{}); err == nil {
		t.Error("expected error for unknown format")
	}
}
