// Package pdfobj implements the native PDF object model used throughout
// jpoffice's PDF export pipeline: Name, Dict, Array, Integer, Real,
// Boolean, String, Reference, and Stream, each implementing the Object
// interface.
//
// This package only writes objects; jpoffice never parses PDF.
package pdfobj
