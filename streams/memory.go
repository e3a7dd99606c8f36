// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// memory.go - In-memory stream doubles for testing command behavior.
package streams

import (
	"bytes"
	"io"
)

// Memory is a Streams backed entirely by in-memory buffers.
//
// It exists to make command behavior unit-testable: tests seed the input
// buffer, run the command against the embedded Streams, and then inspect
// what was written to the output and error buffers. The real process
// streams are never touched.
type Memory struct {
	*Streams

	in  *bytes.Buffer
	out *bytes.Buffer
	err *bytes.Buffer
}

// NewMemory creates a Memory with empty input, output, and error buffers.
func NewMemory() *Memory {
	in := new(bytes.Buffer)
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	return &Memory{
		Streams: New(in, out, errOut),
		in:      in,
		out:     out,
		err:     errOut,
	}
}

// SetInput replaces the contents of the input stream.
func (m *Memory) SetInput(contents []byte) {
	m.Input(func(io.Reader) error {
		m.in.Reset()
		m.in.Write(contents)
		return nil
	})
}

// OutputBytes returns a copy of everything written to the global output
// stream so far.
func (m *Memory) OutputBytes() []byte {
	var out []byte
	m.Output(func(io.Writer) error {
		out = append(out, m.out.Bytes()...)
		return nil
	})
	return out
}

// OutputString returns everything written to the global output stream as a
// string.
func (m *Memory) OutputString() string {
	return string(m.OutputBytes())
}

// ErrorBytes returns a copy of everything written to the error output
// stream so far.
func (m *Memory) ErrorBytes() []byte {
	var out []byte
	m.Error(func(io.Writer) error {
		out = append(out, m.err.Bytes()...)
		return nil
	})
	return out
}

// ErrorString returns everything written to the error output stream as a
// string.
func (m *Memory) ErrorString() string {
	return string(m.ErrorBytes())
}

// ResetInput empties the input buffer.
func (m *Memory) ResetInput() {
	m.Input(func(io.Reader) error {
		m.in.Reset()
		return nil
	})
}

// ResetOutput empties the global output buffer.
func (m *Memory) ResetOutput() {
	m.Output(func(io.Writer) error {
		m.out.Reset()
		return nil
	})
}

// ResetError empties the error output buffer.
func (m *Memory) ResetError() {
	m.Error(func(io.Writer) error {
		m.err.Reset()
		return nil
	})
}

// Reset empties all three buffers.
func (m *Memory) Reset() {
	m.ResetInput()
	m.ResetOutput()
	m.ResetError()
}
