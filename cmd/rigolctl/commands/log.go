package commands

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"

	"github.com/rigol-scpi/rigol-go/pkg/log"
)

// RunLog prints the events of a session capture file.
func RunLog(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("log", flag.ContinueOnError)
	fs.SetOutput(stderr)
	session := fs.String("session", "", "Filter by session ID")
	dirName := fs.String("dir", "", "Filter by direction (write, read)")
	errorsOnly := fs.Bool("errors", false, "Show only events that recorded an error")
	if err := fs.Parse(args); err != nil {
		return exitCommandError
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: expected exactly one capture file")
		return exitCommandError
	}

	filter := log.Filter{
		SessionID:  *session,
		ErrorsOnly: *errorsOnly,
	}
	switch *dirName {
	case "":
	case "write":
		d := log.DirectionWrite
		filter.Direction = &d
	case "read":
		d := log.DirectionRead
		filter.Direction = &d
	default:
		fmt.Fprintf(stderr, "Error: unknown direction %q\n", *dirName)
		return exitCommandError
	}

	r, err := log.NewFilteredReader(fs.Arg(0), filter)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	defer r.Close()

	count := 0
	for {
		event, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
		formatEvent(stdout, event)
		count++
	}

	fmt.Fprintf(stdout, "Total: %d events\n", count)
	return exitSuccess
}

// formatEvent writes a human-readable representation of one capture
// event to w.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [sess:%s] %-5s %s", ts, shortenSessionID(event.SessionID), event.Direction, event.Command)

	if event.Direction == log.DirectionRead {
		fmt.Fprintf(w, " (%d bytes)", event.Size)
	}
	if event.Truncated {
		fmt.Fprint(w, " [truncated]")
	}
	if event.Err != "" {
		fmt.Fprintf(w, " ERROR: %s", event.Err)
	}
	fmt.Fprintln(w)

	if event.Direction == log.DirectionRead && len(event.Data) > 0 {
		preview := event.Data
		if len(preview) > 32 {
			preview = preview[:32]
		}
		fmt.Fprintf(w, "    %s\n", hex.EncodeToString(preview))
	}
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
