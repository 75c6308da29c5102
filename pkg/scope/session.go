package scope

import (
	"strings"

	"github.com/rigol-scpi/rigol-go/pkg/log"
	"github.com/rigol-scpi/rigol-go/pkg/scpi"
)

// responseBufSize is the session read buffer. Responses are read through
// one buffered reader so a reply split across transport segments is
// reassembled, and block headers do not cost one transport round trip
// per byte.
const responseBufSize = 4096

// write renders an operation and sends it, mirroring it to the capture
// logger.
func (s *Scope) write(op string, args ...any) error {
	cmd, err := s.vocab.Render(op, args...)
	if err != nil {
		return err
	}
	return s.writeRaw(cmd)
}

// writeRaw sends a pre-rendered command.
func (s *Scope) writeRaw(cmd string) error {
	event := log.NewWriteEvent(s.session, cmd)
	err := s.t.WriteString(cmd)
	if err != nil {
		event.Err = err.Error()
	}
	s.logger.Log(event)
	return err
}

// readLine reads one terminator-delimited ASCII response, skipping blank
// leftovers from a previous binary block. A response that ends before its
// terminator is an error, never a partial value.
func (s *Scope) readLine() (string, error) {
	for {
		line, err := s.br.ReadString('\n')
		if err != nil {
			return "", err
		}
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed, nil
		}
	}
}

// ask sends a query and reads one ASCII response, trimmed of line
// terminators.
func (s *Scope) ask(op string, args ...any) (string, error) {
	cmd, err := s.vocab.Render(op, args...)
	if err != nil {
		return "", err
	}
	if err := s.writeRaw(cmd); err != nil {
		return "", err
	}

	resp, err := s.readLine()

	event := log.NewReadEvent(s.session, cmd, []byte(resp))
	if err != nil {
		event.Err = err.Error()
	}
	s.logger.Log(event)

	if err != nil {
		return "", err
	}
	return resp, nil
}

// askFloat sends a query and parses a numeric response.
func (s *Scope) askFloat(op string, args ...any) (float64, error) {
	resp, err := s.ask(op, args...)
	if err != nil {
		return 0, err
	}
	return scpi.ParseFloat(resp)
}

// askBool sends a query and parses a 0/1 response.
func (s *Scope) askBool(op string, args ...any) (bool, error) {
	resp, err := s.ask(op, args...)
	if err != nil {
		return false, err
	}
	return scpi.ParseBool(resp)
}

// askBlock sends a query and reads one binary-block response.
func (s *Scope) askBlock(cmd string) ([]byte, error) {
	if err := s.writeRaw(cmd); err != nil {
		return nil, err
	}

	payload, err := scpi.ReadBlock(s.br)

	event := log.NewReadEvent(s.session, cmd, payload)
	if err != nil {
		event.Err = err.Error()
	}
	s.logger.Log(event)

	return payload, err
}
