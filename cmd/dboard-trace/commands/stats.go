package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/sdrhost/dboard-go/pkg/dboard"
	"github.com/sdrhost/dboard-go/pkg/prop"
	"github.com/sdrhost/dboard-go/pkg/trace"
	"github.com/sdrhost/dboard-go/pkg/wire"
)

// Stats holds aggregate statistics about a trace file.
type Stats struct {
	TotalEvents       int
	EventsByOperation map[wire.Operation]int
	EventsByStatus    map[wire.Status]int
	EventsByKey       map[prop.Key]int
	Sessions          map[string]*SessionStats
	Failures          int
	TimeRange         struct {
		Start time.Time
		End   time.Time
	}
}

// SessionStats holds statistics for a single manager session.
type SessionStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Slot      string
	RXID      dboard.ID
	TXID      dboard.ID
	seenRX    bool
	seenTX    bool
}

// CollectStats reads the trace file and aggregates matching events.
func CollectStats(path string, filter trace.Filter) (*Stats, error) {
	stats := &Stats{
		EventsByOperation: make(map[wire.Operation]int),
		EventsByStatus:    make(map[wire.Status]int),
		EventsByKey:       make(map[prop.Key]int),
		Sessions:          make(map[string]*SessionStats),
	}

	err := forEach(path, filter, func(event trace.Event) error {
		stats.TotalEvents++
		stats.EventsByOperation[event.Operation]++
		stats.EventsByStatus[event.Status]++
		stats.EventsByKey[event.Key]++

		// Track time range
		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		// Track session stats
		sess, ok := stats.Sessions[event.SessionID]
		if !ok {
			sess = &SessionStats{
				FirstSeen: event.Timestamp,
				LastSeen:  event.Timestamp,
				Slot:      event.Slot,
			}
			stats.Sessions[event.SessionID] = sess
		}
		sess.Events++
		if event.Timestamp.After(sess.LastSeen) {
			sess.LastSeen = event.Timestamp
		}
		switch event.Unit {
		case dboard.UnitRX:
			sess.RXID, sess.seenRX = event.BoardID, true
		case dboard.UnitTX:
			sess.TXID, sess.seenTX = event.BoardID, true
		}

		if event.Failed() {
			stats.Failures++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// RunStats analyzes the trace file and prints statistics.
func RunStats(path string, filter trace.Filter, w io.Writer) error {
	stats, err := CollectStats(path, filter)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== dboard Property Trace Statistics ===")
	fmt.Fprintln(w)

	// Time range
	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Millisecond))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Operation:")
	for _, op := range []wire.Operation{wire.OpGet, wire.OpSet} {
		if count := stats.EventsByOperation[op]; count > 0 {
			fmt.Fprintf(w, "  %-18s %d\n", op.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Status:")
	for s := wire.StatusSuccess; s <= wire.StatusFailure; s++ {
		if count := stats.EventsByStatus[s]; count > 0 {
			fmt.Fprintf(w, "  %-18s %d\n", s.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Key:")
	keys := make([]prop.Key, 0, len(stats.EventsByKey))
	for k := range stats.EventsByKey {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, k := range keys {
		fmt.Fprintf(w, "  %-18s %d\n", k.String()+":", stats.EventsByKey[k])
	}
	fmt.Fprintln(w)

	// Sessions
	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	if len(stats.Sessions) > 0 {
		type sessInfo struct {
			id    string
			stats *SessionStats
		}
		sessions := make([]sessInfo, 0, len(stats.Sessions))
		for id, ss := range stats.Sessions {
			sessions = append(sessions, sessInfo{id, ss})
		}
		sort.Slice(sessions, func(i, j int) bool {
			return sessions[i].stats.FirstSeen.Before(sessions[j].stats.FirstSeen)
		})

		fmt.Fprintln(w)
		for _, s := range sessions {
			duration := s.stats.LastSeen.Sub(s.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events, duration %s\n", shortenSessionID(s.id), s.stats.Events, duration)
			if s.stats.Slot != "" {
				fmt.Fprintf(w, "           Slot: %s\n", s.stats.Slot)
			}
			if s.stats.seenRX {
				fmt.Fprintf(w, "           RX: %s\n", s.stats.RXID)
			}
			if s.stats.seenTX {
				fmt.Fprintf(w, "           TX: %s\n", s.stats.TXID)
			}
		}
	}

	if stats.Failures > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Failures: %d\n", stats.Failures)
	}
}
