// jpoffice - a word-processor engine and PDF export pipeline
// Copyright (C) 2026  jpoffice contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package pdfobj implements the low-level PDF object model: the native
// value types (Name, Dict, Array, Integer, Real, Boolean, String,
// Reference, Stream) and the small amount of machinery needed to format
// them as PDF syntax.  The package only supports writing objects, not
// parsing them back out of a file; jpoffice never reads PDF.
package pdfobj

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Object is implemented by every value that can appear as (or be
// converted to) a native PDF object.
type Object interface {
	// AsPDF returns the canonical, indirection-free representation of the
	// object that gets formatted into the file.
	AsPDF() Native
}

// Native is the subset of Object implemented by the built-in PDF object
// kinds. Every Native also formats itself directly as PDF syntax via
// WriteTo.
type Native interface {
	Object
	WriteTo(w io.Writer) (int64, error)
}

// Reference is an indirect reference to an object, "<number> <generation> R".
type Reference uint64

// NewReference creates a reference with the given object number and
// generation. Generation is always 0 for objects jpoffice writes.
func NewReference(number uint32, generation uint16) Reference {
	return Reference(uint64(number)<<16 | uint64(generation))
}

func (ref Reference) Number() uint32     { return uint32(ref >> 16) }
func (ref Reference) Generation() uint16 { return uint16(ref) }
func (ref Reference) IsZero() bool       { return ref == 0 }

func (ref Reference) String() string {
	return fmt.Sprintf("%d %d R", ref.Number(), ref.Generation())
}

func (ref Reference) AsPDF() Native { return ref }

func (ref Reference) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, ref.String())
	return int64(n), err
}

// Name is a PDF name object, "/Foo".
type Name string

func (n Name) AsPDF() Native { return n }

func (n Name) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	b.WriteByte('/')
	for _, c := range []byte(n) {
		if c <= 0x20 || c >= 0x7f || strings.IndexByte("()<>[]{}/%#", c) >= 0 {
			fmt.Fprintf(&b, "#%02x", c)
		} else {
			b.WriteByte(c)
		}
	}
	k, err := io.WriteString(w, b.String())
	return int64(k), err
}

// Boolean is a PDF boolean object.
type Boolean bool

func (b Boolean) AsPDF() Native { return b }

func (b Boolean) WriteTo(w io.Writer) (int64, error) {
	s := "false"
	if b {
		s = "true"
	}
	n, err := io.WriteString(w, s)
	return int64(n), err
}

// Integer is a PDF integer object.
type Integer int64

func (x Integer) AsPDF() Native { return x }

func (x Integer) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, strconv.FormatInt(int64(x), 10))
	return int64(n), err
}

// Real is a PDF real-number object. All numeric output in jpoffice is
// rounded to two decimal places before being wrapped in a Real, per the
// PDF export pipeline's coordinate-conversion rule.
type Real float64

func (x Real) AsPDF() Native { return x }

func (x Real) WriteTo(w io.Writer) (int64, error) {
	s := strconv.FormatFloat(float64(x), 'f', -1, 64)
	n, err := io.WriteString(w, s)
	return int64(n), err
}

// Round rounds v to the given number of decimal digits, the way the PDF
// export pipeline rounds every coordinate before emitting it.
func Round(v float64, digits int) float64 {
	scale := 1.0
	for range make([]struct{}, digits) {
		scale *= 10
	}
	return float64(int64(v*scale+sign(v)*0.5)) / scale
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// String is a PDF string object. It holds raw bytes; use TextString for
// the higher-level "text string" convention (UTF-16BE with a BOM).
type String []byte

func (s String) AsPDF() Native { return s }

func (s String) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	b.WriteByte('(')
	for _, c := range []byte(s) {
		switch c {
		case '(', ')', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(')')
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// HexString formats s using the PDF hex-string syntax "<...>" instead of
// the literal-string syntax. Used for CID-keyed show-text operands.
func HexString(s []byte) string {
	var b strings.Builder
	b.WriteByte('<')
	for _, c := range s {
		fmt.Fprintf(&b, "%02X", c)
	}
	b.WriteByte('>')
	return b.String()
}

// Array is a PDF array object.
type Array []Object

func (a Array) AsPDF() Native { return a }

func (a Array) WriteTo(w io.Writer) (int64, error) {
	var total int64
	n, err := io.WriteString(w, "[")
	total += int64(n)
	if err != nil {
		return total, err
	}
	for i, elem := range a {
		if i > 0 {
			n, err = io.WriteString(w, " ")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
		m, err := elem.AsPDF().WriteTo(w)
		total += m
		if err != nil {
			return total, err
		}
	}
	n, err = io.WriteString(w, "]")
	total += int64(n)
	return total, err
}

// Dict is a PDF dictionary object, keyed by Name.
type Dict map[Name]Object

func (d Dict) AsPDF() Native { return d }

func (d Dict) WriteTo(w io.Writer) (int64, error) {
	var total int64
	n, err := io.WriteString(w, "<<")
	total += int64(n)
	if err != nil {
		return total, err
	}

	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)

	for _, k := range keys {
		n, err = io.WriteString(w, " ")
		total += int64(n)
		if err != nil {
			return total, err
		}
		m, err := Name(k).WriteTo(w)
		total += m
		if err != nil {
			return total, err
		}
		n, err = io.WriteString(w, " ")
		total += int64(n)
		if err != nil {
			return total, err
		}
		m, err = d[Name(k)].AsPDF().WriteTo(w)
		total += m
		if err != nil {
			return total, err
		}
	}
	n, err = io.WriteString(w, " >>")
	total += int64(n)
	return total, err
}

// Clone returns a shallow copy of the dictionary.
func (d Dict) Clone() Dict {
	out := make(Dict, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Stream is a PDF stream object: a Dict plus a byte payload. The Length
// entry is filled in automatically when the stream is written.
type Stream struct {
	Dict Dict
	Data []byte
}

func (s *Stream) AsPDF() Native { return s }

func (s *Stream) WriteTo(w io.Writer) (int64, error) {
	dict := s.Dict.Clone()
	dict["Length"] = Integer(len(s.Data))

	var total int64
	n, err := dict.WriteTo(w)
	total += n
	if err != nil {
		return total, err
	}
	k, err := io.WriteString(w, "\nstream\n")
	total += int64(k)
	if err != nil {
		return total, err
	}
	m, err := w.Write(s.Data)
	total += int64(m)
	if err != nil {
		return total, err
	}
	k, err = io.WriteString(w, "\nendstream")
	total += int64(k)
	return total, err
}

// Null is the PDF null object.
type nullType struct{}

func (nullType) AsPDF() Native { return nullType{} }
func (nullType) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, "null")
	return int64(n), err
}

// Null is the singleton PDF null object.
var Null Object = nullType{}
