// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// streams.go - Mutex-guarded stream bundle shared by an app and its commands.
package streams

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Streams bundles the three streams a command line application talks to:
// the input stream, the global output stream, and the error output stream.
//
// Each stream is guarded by its own mutex so a single Streams value can be
// shared by concurrent goroutines (progress writers, signal handlers) without
// interleaving partial writes. Access goes through closures that hold the
// lock for the duration of the call:
//
//	s.Output(func(w io.Writer) error {
//	    _, err := fmt.Fprintln(w, "Hello, world!")
//	    return err
//	})
type Streams struct {
	inMu  sync.Mutex
	in    io.Reader
	outMu sync.Mutex
	out   io.Writer
	errMu sync.Mutex
	err   io.Writer
}

// New creates a Streams from arbitrary reader and writers.
func New(in io.Reader, out, errOut io.Writer) *Streams {
	return &Streams{in: in, out: out, err: errOut}
}

// Standard returns a Streams backed by the real process standard streams.
func Standard() *Streams {
	return New(os.Stdin, os.Stdout, os.Stderr)
}

// Input locks the input stream and passes it to fn.
func (s *Streams) Input(fn func(r io.Reader) error) error {
	s.inMu.Lock()
	defer s.inMu.Unlock()
	return fn(s.in)
}

// Output locks the global output stream and passes it to fn.
func (s *Streams) Output(fn func(w io.Writer) error) error {
	s.outMu.Lock()
	defer s.outMu.Unlock()
	return fn(s.out)
}

// Error locks the error output stream and passes it to fn.
func (s *Streams) Error(fn func(w io.Writer) error) error {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return fn(s.err)
}

// =============================================================================
// CONVENIENCE WRITERS
// =============================================================================

// Outputf writes a formatted message to the global output stream.
func (s *Streams) Outputf(format string, args ...any) error {
	return s.Output(func(w io.Writer) error {
		_, err := fmt.Fprintf(w, format, args...)
		return err
	})
}

// Outputln writes a formatted message plus a newline to the global output
// stream.
func (s *Streams) Outputln(format string, args ...any) error {
	return s.Outputf(format+"\n", args...)
}

// Errorf writes a formatted message to the error output stream.
func (s *Streams) Errorf(format string, args ...any) error {
	return s.Error(func(w io.Writer) error {
		_, err := fmt.Fprintf(w, format, args...)
		return err
	})
}

// Errorln writes a formatted message plus a newline to the error output
// stream.
func (s *Streams) Errorln(format string, args ...any) error {
	return s.Errorf(format+"\n", args...)
}

// =============================================================================
// INPUT HELPERS
// =============================================================================

// ReadLine reads a single line from the input stream, without the trailing
// newline. Returns io.EOF once the input is exhausted; a final line without
// a newline is still returned with a nil error.
func (s *Streams) ReadLine() (string, error) {
	var line string
	err := s.Input(func(r io.Reader) error {
		// Read byte by byte so the stream position is left exactly after
		// the newline for the next caller.
		var b [1]byte
		var sb strings.Builder
		for {
			n, err := r.Read(b[:])
			if n > 0 {
				if b[0] == '\n' {
					line = strings.TrimSuffix(sb.String(), "\r")
					return nil
				}
				sb.WriteByte(b[0])
			}
			if err != nil {
				if err == io.EOF && sb.Len() > 0 {
					line = sb.String()
					return nil
				}
				return err
			}
		}
	})
	return line, err
}

// ReadAll reads the input stream to the end.
func (s *Streams) ReadAll() ([]byte, error) {
	var buf []byte
	err := s.Input(func(r io.Reader) error {
		b, err := io.ReadAll(bufio.NewReader(r))
		buf = b
		return err
	})
	return buf, err
}
