// rigolctl is a CLI tool for controlling Rigol oscilloscopes over
// USBTMC or LAN.
package main

import (
	"fmt"
	"os"

	"github.com/rigol-scpi/rigol-go/cmd/rigolctl/commands"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitCommandError)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "idn":
		exitCode = commands.RunIDN(args, os.Stdout, os.Stderr)
	case "run", "stop", "autoscale", "reset", "clear":
		exitCode = commands.RunControl(cmd, args, os.Stdout, os.Stderr)
	case "scale":
		exitCode = commands.RunScale(args, os.Stdout, os.Stderr)
	case "screenshot":
		exitCode = commands.RunScreenshot(args, os.Stdout, os.Stderr)
	case "waveform":
		exitCode = commands.RunWaveform(args, os.Stdout, os.Stderr)
	case "discover":
		exitCode = commands.RunDiscover(args, os.Stdout, os.Stderr)
	case "shell":
		exitCode = commands.RunShell(args, os.Stdout, os.Stderr)
	case "log":
		exitCode = commands.RunLog(args, os.Stdout, os.Stderr)
	case "help", "-h", "--help":
		printUsage()
		exitCode = exitSuccess
	case "version", "-v", "--version":
		fmt.Println("rigolctl version 0.1.0")
		exitCode = exitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		exitCode = exitCommandError
	}

	os.Exit(exitCode)
}

func printUsage() {
	fmt.Println(`rigolctl - Rigol oscilloscope control tool

Usage:
  rigolctl <command> [options]

Commands:
  idn         Query the instrument identity
  run         Start continuous acquisition
  stop        Stop acquisition
  autoscale   Autoscale all active channels
  reset       Factory-reset the instrument
  clear       Clear the display
  scale       Get or set a channel's vertical scale
  screenshot  Capture the instrument display to a file
  waveform    Retrieve waveform samples to a CSV file
  discover    Find LAN instruments via mDNS
  shell       Interactive SCPI shell
  log         Inspect a session capture file

Connection options (shared by instrument commands):
  --resource  USBTMC VISA resource (USB0::6833::1230::XXXX::INSTR)
  --addr      LAN address (host or host:port, SCPI raw socket)
  --family    Instrument family (ds1000z, ds2000a) [default: ds1000z]
  --capture   Record session traffic to a CBOR capture file
  --config    YAML config file with the options above

Options:
  -h, --help     Show this help message
  -v, --version  Show version information

Examples:
  rigolctl idn --addr 192.168.1.42
  rigolctl scale --chan 1 0.5 --resource "USB0::6833::1230::DS1ZA0001::INSTR"
  rigolctl waveform --chan 1 --mode raw -o wave.csv --addr rigol.local
  rigolctl discover --timeout 5
  rigolctl log capture.cbor --errors

For command-specific help, run:
  rigolctl <command> --help`)
}
