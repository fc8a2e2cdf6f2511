// jpoffice - a word-processor engine and PDF export pipeline
//
// Some code here (the PNG "Up" predictor writer) is adapted from
// https://pkg.go.dev/rsc.io/pdf, used under a BSD-style license.

package pdfobj

import (
	"bytes"
	"compress/zlib"
)

// CompressThreshold is the minimum stream length, in bytes, at or below
// which jpoffice leaves a stream uncompressed. Streams larger than this are
// flate-compressed unless the caller already set an explicit /Filter.
const CompressThreshold = 64

// Deflate compresses data with zlib/Flate, the filter jpoffice uses for
// every compressible stream (content streams, CIDToGIDMap, embedded font
// programs, ToUnicode CMaps).
func Deflate(data []byte) []byte {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	zw.Write(data)
	zw.Close()
	return buf.Bytes()
}

// MaybeCompress returns (compressed data, filter name) when data is large
// enough to be worth compressing, or (data, "") otherwise. This implements
// the "streams over 64 bytes are flate-compressed" rule from the PDF
// writer contract.
func MaybeCompress(data []byte) ([]byte, Name) {
	if len(data) <= CompressThreshold {
		return data, ""
	}
	return Deflate(data), "FlateDecode"
}

// PNGUpPredict applies the PNG "Up" predictor (predictor 12 in the PDF
// /DecodeParms convention) to row-major data with the given number of
// bytes per row. It is used to shrink the CIDToGIDMap stream before
// flate-compressing it.
func PNGUpPredict(data []byte, columns int) []byte {
	if columns <= 0 {
		return data
	}
	out := make([]byte, 0, len(data)+len(data)/columns+1)
	prev := make([]byte, columns)
	for off := 0; off+columns <= len(data); off += columns {
		row := data[off : off+columns]
		out = append(out, 2) // "Up" filter type tag
		for i, b := range row {
			out = append(out, b-prev[i])
		}
		prev = row
	}
	return out
}
