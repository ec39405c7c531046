// Copyright 2015 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package indent prefixes every line written to an io.Writer with a fixed
// string. The decondenser CLI uses it to indent multi-line diagnostics
// (config load errors, the --help list of profiles) the same way the rest
// of the ecosystem indents nested output.
package indent

import "bytes"

// String returns in with prefix inserted at the start of in and after every
// newline that has more content following it. It never adds a prefix after
// a newline that ends in, and never adds one to an empty string.
func String(prefix, in string) string {
	return string(Bytes([]byte(prefix), []byte(in)))
}

// Bytes is String for byte slices.
func Bytes(prefix, in []byte) []byte {
	if len(in) == 0 {
		return nil
	}

	var out bytes.Buffer
	out.Write(prefix)
	for i, b := range in {
		out.WriteByte(b)
		if b == '\n' && i != len(in)-1 {
			out.Write(prefix)
		}
	}
	return out.Bytes()
}

// Writer wraps an underlying io.Writer, inserting prefix at the start of
// every line written to it. A "line" is a run of bytes up to and including
// a newline; Writer tracks whether the previous Write ended mid-line so a
// prefix split across two Write calls is still only emitted once per line.
type Writer struct {
	w           writer
	prefix      []byte
	atLineStart bool
}

type writer interface {
	Write(p []byte) (int, error)
}

// NewWriter returns a Writer that indents everything written to it with
// prefix, before forwarding to w.
func NewWriter(w writer, prefix string) *Writer {
	return &Writer{w: w, prefix: []byte(prefix), atLineStart: true}
}

// Write implements io.Writer. The prefixed bytes are assembled into a
// single buffer and handed to the underlying writer in one call, so a
// partial or failed underlying write is translated back into a count of
// how many bytes of buf (excluding the inserted prefixes) made it through.
func (w *Writer) Write(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}

	var combined bytes.Buffer
	positions := make([]int, 0, len(buf))
	atStart := w.atLineStart
	for _, b := range buf {
		if atStart {
			combined.Write(w.prefix)
			atStart = false
		}
		positions = append(positions, combined.Len())
		combined.WriteByte(b)
		if b == '\n' {
			atStart = true
		}
	}
	w.atLineStart = atStart

	n, err := w.w.Write(combined.Bytes())
	if n > combined.Len() {
		n = combined.Len()
	}

	written := 0
	for _, p := range positions {
		if p >= n {
			break
		}
		written++
	}
	return written, err
}
