package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rigol-scpi/rigol-go/pkg/discovery"
)

// RunDiscover browses the LAN for instruments and prints each one as it
// announces itself.
func RunDiscover(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("discover", flag.ContinueOnError)
	fs.SetOutput(stderr)
	timeout := fs.Int("timeout", 10, "Browse duration in seconds")
	model := fs.String("model", "", "Only show instruments matching this model substring")
	iface := fs.String("iface", "", "Restrict browsing to one network interface")
	if err := fs.Parse(args); err != nil {
		return exitCommandError
	}

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(*timeout)*time.Second)
	defer cancel()

	found, err := discovery.Browse(ctx, discovery.Config{Interface: *iface})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	needle := strings.ToLower(*model)
	count := 0
	for in := range found {
		if needle != "" &&
			!strings.Contains(strings.ToLower(in.Model), needle) &&
			!strings.Contains(strings.ToLower(in.InstanceName), needle) {
			continue
		}
		printInstrument(stdout, in)
		count++
	}

	if count == 0 {
		fmt.Fprintln(stdout, "No instruments found")
	}
	return exitSuccess
}

// printInstrument writes one discovered instrument to w.
func printInstrument(w io.Writer, in *discovery.Instrument) {
	fmt.Fprintf(w, "%s\n", in.InstanceName)
	if in.Manufacturer != "" || in.Model != "" {
		fmt.Fprintf(w, "  Device:  %s %s\n",
			strings.TrimSpace(in.Manufacturer), strings.TrimSpace(in.Model))
	}
	fmt.Fprintf(w, "  Address: %s\n", in.Addr())
	if len(in.Addresses) > 1 {
		fmt.Fprintf(w, "  Also:    %s\n", strings.Join(in.Addresses[1:], ", "))
	}
	fmt.Fprintf(w, "  Service: %s\n", in.Service)
}
