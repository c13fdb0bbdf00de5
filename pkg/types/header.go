// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd001-analysis-core R1.3 (Header);
//
//	docs/ARCHITECTURE § Data Model.
package types

import "strings"

// HeaderKind discriminates the kinds of includable units.
type HeaderKind int

const (
	// HeaderPhysical is a resolvable file.
	HeaderPhysical HeaderKind = iota
	// HeaderStdlib is a logical standard-library header.
	HeaderStdlib
	// HeaderVerbatim is a header known only by its spelling.
	HeaderVerbatim
	// HeaderBuiltin is the predefines preamble sentinel. Not includable.
	HeaderBuiltin
	// HeaderMainFile is the unit's own main file sentinel. Not includable.
	HeaderMainFile
)

// Header is an includable unit that can provide access to Locations,
// independent of whether it is currently included. A Header never mixes
// kinds; the sentinel kinds carry no payload. Headers are comparable
// with ==, and Less orders them by kind then payload.
type Header struct {
	Kind     HeaderKind
	File     FileID // HeaderPhysical
	Std      string // HeaderStdlib: canonical spelling, e.g. "<vector>"
	Spelling string // HeaderVerbatim
}

// PhysicalHeader wraps a resolved file.
func PhysicalHeader(f FileID) Header {
	return Header{Kind: HeaderPhysical, File: f}
}

// StdlibHeader wraps a logical standard-library header name like
// "<vector>".
func StdlibHeader(name string) Header {
	return Header{Kind: HeaderStdlib, Std: name}
}

// VerbatimHeader wraps a literal header spelling.
func VerbatimHeader(spelling string) Header {
	return Header{Kind: HeaderVerbatim, Spelling: spelling}
}

// BuiltinHeader returns the predefines sentinel.
func BuiltinHeader() Header {
	return Header{Kind: HeaderBuiltin}
}

// MainFileHeader returns the main-file sentinel.
func MainFileHeader() Header {
	return Header{Kind: HeaderMainFile}
}

// Less orders headers by kind, then payload. This is the deterministic
// identity order used for ranking tie-breaks.
func (h Header) Less(o Header) bool {
	if h.Kind != o.Kind {
		return h.Kind < o.Kind
	}
	switch h.Kind {
	case HeaderPhysical:
		return h.File < o.File
	case HeaderStdlib:
		return h.Std < o.Std
	case HeaderVerbatim:
		return h.Spelling < o.Spelling
	case HeaderBuiltin, HeaderMainFile:
		return false // no payload
	}
	panic("unhandled Header kind")
}

// Name returns the display name: the file path for physical headers,
// the canonical spelling for stdlib and verbatim headers, and fixed
// strings for the sentinels.
func (h Header) Name(files FileOracle) string {
	switch h.Kind {
	case HeaderPhysical:
		return files.Path(h.File)
	case HeaderStdlib:
		return h.Std
	case HeaderVerbatim:
		return "<" + strings.Trim(h.Spelling, "<>\"") + ">"
	case HeaderBuiltin:
		return "<built-in>"
	case HeaderMainFile:
		return "<main-file>"
	}
	panic("unhandled Header kind")
}
