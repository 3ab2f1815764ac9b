package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sdrhost/dboard-go/pkg/trace"
)

// jsonEvent is the JSONL export shape. Enums are rendered by name.
type jsonEvent struct {
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"session_id"`
	Slot      string    `json:"slot,omitempty"`
	Unit      string    `json:"unit"`
	BoardID   string    `json:"board_id"`
	Subdev    string    `json:"subdev"`
	Operation string    `json:"operation"`
	Key       string    `json:"key"`
	Kind      string    `json:"kind,omitempty"`
	Value     string    `json:"value,omitempty"`
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
}

func toJSONEvent(e trace.Event) jsonEvent {
	j := jsonEvent{
		Timestamp: e.Timestamp.UTC(),
		SessionID: e.SessionID,
		Slot:      e.Slot,
		Unit:      e.Unit.String(),
		BoardID:   e.BoardID.String(),
		Subdev:    e.Subdev,
		Operation: e.Operation.String(),
		Key:       e.Key.String(),
		Status:    e.Status.String(),
		Error:     e.Error,
	}
	if e.Value != nil {
		j.Kind = e.Value.Kind().String()
		j.Value = e.Value.String()
	}
	return j
}

// RunExport exports the trace file to the specified format.
func RunExport(path, format, output string, filter trace.Filter) error {
	// Determine output writer
	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(path, filter, w)
	case "csv":
		return exportCSV(path, filter, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

func exportJSONL(path string, filter trace.Filter, w io.Writer) error {
	encoder := json.NewEncoder(w)
	return forEach(path, filter, func(event trace.Event) error {
		if err := encoder.Encode(toJSONEvent(event)); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
		return nil
	})
}

func exportCSV(path string, filter trace.Filter, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "session_id", "slot", "unit", "board_id", "subdev", "operation", "key", "value", "status", "error"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	err := forEach(path, filter, func(event trace.Event) error {
		j := toJSONEvent(event)
		row := []string{
			j.Timestamp.Format("2006-01-02T15:04:05.000000Z"),
			j.SessionID,
			j.Slot,
			j.Unit,
			j.BoardID,
			j.Subdev,
			j.Operation,
			j.Key,
			j.Value,
			j.Status,
			j.Error,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
