package commands

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/uuid"

	"github.com/rigol-scpi/rigol-go/pkg/log"
	"github.com/rigol-scpi/rigol-go/pkg/scpi"
)

// RunShell starts an interactive SCPI shell on the raw transport.
// Lines ending in "?" are treated as queries and the reply is printed.
func RunShell(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("shell", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cf := addConnFlags(fs)
	if err := fs.Parse(args); err != nil {
		return exitCommandError
	}

	cfg, err := cf.resolve()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	logger, closeCapture, err := openCapture(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	defer closeCapture()

	t, err := openTransport(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	defer t.Close()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "scpi> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to create readline: %v\n", err)
		return exitCommandError
	}
	defer rl.Close()

	session := uuid.New().String()
	out := rl.Stdout()
	fmt.Fprintln(out, "Interactive SCPI shell. Lines ending in ? read a reply. Type exit to quit.")

	br := bufio.NewReader(t)
	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			return exitSuccess
		}

		cmd := strings.TrimSpace(line)
		switch cmd {
		case "":
			continue
		case "exit", "quit":
			return exitSuccess
		}

		if err := t.WriteString(cmd); err != nil {
			fmt.Fprintf(rl.Stderr(), "write failed: %v\n", err)
			return exitInstrument
		}
		logger.Log(log.NewWriteEvent(session, cmd))

		if !strings.HasSuffix(cmd, "?") {
			continue
		}

		reply, binary, err := readReply(br)
		if err != nil {
			fmt.Fprintf(rl.Stderr(), "read failed: %v\n", err)
			continue
		}
		logger.Log(log.NewReadEvent(session, cmd, reply))
		if binary {
			fmt.Fprintf(out, "<%d bytes binary>\n", len(reply))
		} else {
			fmt.Fprintln(out, strings.TrimSpace(string(reply)))
		}
	}
}

// readReply reads one query reply through the buffered reader: a
// definite-length binary block when the instrument answers with one,
// otherwise a full terminator-delimited ASCII line. Terminators left
// over from a previous reply are skipped.
func readReply(br *bufio.Reader) (reply []byte, binary bool, err error) {
	for {
		b, err := br.Peek(1)
		if err != nil {
			return nil, false, err
		}
		switch b[0] {
		case '\n', '\r':
			_, _ = br.Discard(1)
		case '#':
			payload, err := scpi.ReadBlock(br)
			return payload, true, err
		default:
			line, err := br.ReadString('\n')
			if err != nil {
				return nil, false, err
			}
			return []byte(line), false, nil
		}
	}
}
