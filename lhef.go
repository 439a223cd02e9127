// Package lhef holds the data model for Les Houches Event Files, a
// line-oriented text format used to exchange events between particle
// physics generators.
//
// The field names follow the Fortran common blocks defined in
// https://arxiv.org/abs/hep-ph/0109068: RunInfo mirrors HEPRUP,
// Event mirrors HEPEUP. Reading and writing live in the parse and
// encode packages.
package lhef

import "github.com/beevik/etree"

// XMLTree is the element tree produced for the structured <header>
// block. The tree parser is external; this package only carries the
// root element around.
type XMLTree = etree.Element

// Attrs holds the name="value" pairs from a block's opening tag.
// Iteration order carries no meaning.
type Attrs map[string]string

// RunInfo is the per-run information from the <init> block (HEPRUP).
//
// XSECUP, XERRUP, XMAXUP and LPRUP each have exactly NPRUP entries,
// one per subprocess. The reader guarantees this by construction; the
// writer rejects run information that violates it.
type RunInfo struct {
	// IDBMUP holds the beam particle IDs.
	IDBMUP [2]int32
	// EBMUP holds the beam energies in GeV.
	EBMUP [2]float64
	// PDFGUP holds the PDF author groups.
	PDFGUP [2]int32
	// PDFSUP holds the PDF set IDs.
	PDFSUP [2]int32
	// IDWTUP is the event weighting scheme.
	IDWTUP int32
	// NPRUP is the number of subprocesses.
	NPRUP int32
	// XSECUP holds the subprocess cross sections.
	XSECUP []float64
	// XERRUP holds the subprocess cross section errors.
	XERRUP []float64
	// XMAXUP holds the subprocess maximum weights.
	XMAXUP []float64
	// LPRUP holds the subprocess IDs.
	LPRUP []int32
	// Info is the free-form text between the subprocess lines and
	// the closing </init> tag.
	Info string
	// Attr holds the attributes of the <init> tag.
	Attr Attrs
}

// Event is a single event from an <event> block (HEPEUP).
//
// The per-particle slices IDUP, ISTUP, MOTHUP, ICOLUP, PUP, VTIMUP
// and SPINUP each have exactly NUP entries.
type Event struct {
	// NUP is the number of particles.
	NUP int32
	// IDRUP is the subprocess ID.
	IDRUP int32
	// XWGTUP is the event weight.
	XWGTUP float64
	// SCALUP is the scale in GeV.
	SCALUP float64
	// AQEDUP is the QED coupling α.
	AQEDUP float64
	// AQCDUP is the QCD coupling α_s.
	AQCDUP float64
	// IDUP holds the particle IDs.
	IDUP []int32
	// ISTUP holds the particle status codes.
	ISTUP []int32
	// MOTHUP holds the indices of the decay mothers.
	MOTHUP [][2]int32
	// ICOLUP holds the colour flow indices.
	ICOLUP [][2]int32
	// PUP holds the particle momenta (px, py, pz, E, m) in GeV.
	PUP [][5]float64
	// VTIMUP holds the invariant lifetimes in mm.
	VTIMUP []float64
	// SPINUP holds the spin angles.
	SPINUP []float64
	// Info is the free-form text between the particle lines and the
	// closing </event> tag.
	Info string
	// Attr holds the attributes of the <event> tag.
	Attr Attrs
}
