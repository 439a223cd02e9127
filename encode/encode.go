// Package encode writes Les Houches Event Files. A Writer enforces
// the block order of the format with an explicit state machine:
// header material and run information first, then events, then the
// closing tag.
//
// The usual shape of a writing loop is
//
//	w, err := encode.NewWriter(out, "3.0")
//	if err != nil { ... }
//	defer w.Close()
//	if err := w.RunInfo(run); err != nil { ... }
//	for _, ev := range events {
//		if err := w.Event(ev); err != nil { ... }
//	}
//	if err := w.Finish(); err != nil { ... }
//
// Close finishes the stream on a best-effort basis if Finish was
// never called, so an abandoned writer still leaves a well-formed
// file behind.
package encode

import (
	"io"
	"sort"
	"strings"

	"github.com/hepstream/lhef"
	"github.com/hepstream/lhef/syntax"
)

// State is the writer protocol state.
type State int

const (
	// ExpectingHeaderOrInit accepts header material or run
	// information.
	ExpectingHeaderOrInit State = iota
	// ExpectingEventOrFinish accepts events or the closing tag.
	ExpectingEventOrFinish
	// Finished accepts nothing further.
	Finished
	// Failed is sticky: a stream write failed and the output is in
	// an undetermined state. Later calls still write, so callers can
	// flush what they can, but report ErrWriterFailed.
	Failed
)

func (s State) String() string {
	switch s {
	case ExpectingHeaderOrInit:
		return "ExpectingHeaderOrInit"
	case ExpectingEventOrFinish:
		return "ExpectingEventOrFinish"
	case Finished:
		return "Finished"
	case Failed:
		return "Failed"
	}
	return "Unknown"
}

// Writer serializes an LHEF stream. It owns the underlying writer
// exclusively.
type Writer struct {
	w     io.Writer
	state State
}

// NewWriter writes the opening tag declaring the given version and
// returns a writer expecting header material or run information.
func NewWriter(w io.Writer, version string) (*Writer, error) {
	open := syntax.TagOpen + `"` + version + `">` + "\n"
	if _, err := io.WriteString(w, open); err != nil {
		return nil, err
	}
	return &Writer{w: w, state: ExpectingHeaderOrInit}, nil
}

// assertState admits the call when the writer is in the expected
// state, or in Failed: failed writers still attempt their writes and
// report the sticky failure afterwards.
func (w *Writer) assertState(expected State, op string) error {
	if w.state != expected && w.state != Failed {
		return &StateError{State: w.state, Op: op}
	}
	return nil
}

func (w *Writer) okUnlessFailed() error {
	if w.state == Failed {
		return ErrWriterFailed
	}
	return nil
}

func (w *Writer) emit(s string) error {
	if _, err := io.WriteString(w.w, s); err != nil {
		w.state = Failed
		return err
	}
	return w.okUnlessFailed()
}

// Header writes a comment header block wrapped in the comment
// delimiters.
func (w *Writer) Header(text string) error {
	if err := w.assertState(ExpectingHeaderOrInit, "header"); err != nil {
		return err
	}
	var b strings.Builder
	b.WriteString(syntax.CommentStart)
	b.WriteByte('\n')
	writeInfo(&b, text)
	b.WriteString(syntax.CommentEnd)
	b.WriteByte('\n')
	return w.emit(b.String())
}

// RunInfo validates and writes the <init> block and moves the writer
// to the event-writing state. A subprocess count mismatch is rejected
// before anything is written.
func (w *Writer) RunInfo(run *lhef.RunInfo) error {
	if err := w.assertState(ExpectingHeaderOrInit, "init"); err != nil {
		return err
	}
	n := int(run.NPRUP)
	if n != len(run.XSECUP) || n != len(run.XERRUP) ||
		n != len(run.XMAXUP) || n != len(run.LPRUP) {
		return ErrMismatchedSubprocesses
	}
	var b strings.Builder
	b.WriteString(syntax.InitStart)
	writeAttrs(&b, run.Attr)
	b.WriteString(">\n")
	for _, v := range run.IDBMUP {
		b.WriteString(syntax.FormatInt(v))
		b.WriteByte(' ')
	}
	for _, v := range run.EBMUP {
		b.WriteString(syntax.FormatFloat(v))
		b.WriteByte(' ')
	}
	for _, v := range run.PDFGUP {
		b.WriteString(syntax.FormatInt(v))
		b.WriteByte(' ')
	}
	for _, v := range run.PDFSUP {
		b.WriteString(syntax.FormatInt(v))
		b.WriteByte(' ')
	}
	b.WriteString(syntax.FormatInt(run.IDWTUP))
	b.WriteByte(' ')
	b.WriteString(syntax.FormatInt(run.NPRUP))
	b.WriteByte('\n')
	for i := range run.XSECUP {
		b.WriteString(syntax.FormatFloat(run.XSECUP[i]))
		b.WriteByte(' ')
		b.WriteString(syntax.FormatFloat(run.XERRUP[i]))
		b.WriteByte(' ')
		b.WriteString(syntax.FormatFloat(run.XMAXUP[i]))
		b.WriteByte(' ')
		b.WriteString(syntax.FormatInt(run.LPRUP[i]))
		b.WriteByte('\n')
	}
	writeInfo(&b, run.Info)
	b.WriteString(syntax.InitEnd)
	b.WriteByte('\n')
	if err := w.emit(b.String()); err != nil {
		return err
	}
	w.state = ExpectingEventOrFinish
	return nil
}

// Event validates and writes one <event> block. A particle count
// mismatch is rejected before anything is written.
func (w *Writer) Event(ev *lhef.Event) error {
	if err := w.assertState(ExpectingEventOrFinish, "event"); err != nil {
		return err
	}
	n := int(ev.NUP)
	if n != len(ev.IDUP) || n != len(ev.ISTUP) || n != len(ev.MOTHUP) ||
		n != len(ev.ICOLUP) || n != len(ev.PUP) || n != len(ev.VTIMUP) ||
		n != len(ev.SPINUP) {
		return ErrMismatchedParticles
	}
	var b strings.Builder
	b.WriteString(syntax.EventStart)
	writeAttrs(&b, ev.Attr)
	b.WriteString(">\n")
	b.WriteString(syntax.FormatInt(ev.NUP))
	b.WriteByte(' ')
	b.WriteString(syntax.FormatInt(ev.IDRUP))
	for _, v := range []float64{ev.XWGTUP, ev.SCALUP, ev.AQEDUP, ev.AQCDUP} {
		b.WriteByte(' ')
		b.WriteString(syntax.FormatFloat(v))
	}
	b.WriteByte('\n')
	for i := range ev.IDUP {
		b.WriteString(syntax.FormatInt(ev.IDUP[i]))
		b.WriteByte(' ')
		b.WriteString(syntax.FormatInt(ev.ISTUP[i]))
		for _, m := range ev.MOTHUP[i] {
			b.WriteByte(' ')
			b.WriteString(syntax.FormatInt(m))
		}
		for _, c := range ev.ICOLUP[i] {
			b.WriteByte(' ')
			b.WriteString(syntax.FormatInt(c))
		}
		for _, p := range ev.PUP[i] {
			b.WriteByte(' ')
			b.WriteString(syntax.FormatFloat(p))
		}
		b.WriteByte(' ')
		b.WriteString(syntax.FormatFloat(ev.VTIMUP[i]))
		b.WriteByte(' ')
		b.WriteString(syntax.FormatFloat(ev.SPINUP[i]))
		b.WriteByte('\n')
	}
	writeInfo(&b, ev.Info)
	b.WriteString(syntax.EventEnd)
	b.WriteByte('\n')
	return w.emit(b.String())
}

// Finish writes the closing </LesHouchesEvents> tag. The writer
// accepts nothing further.
func (w *Writer) Finish() error {
	if err := w.assertState(ExpectingEventOrFinish, "finish"); err != nil {
		return err
	}
	if err := w.emit(syntax.LastLine + "\n"); err != nil {
		return err
	}
	w.state = Finished
	return nil
}

// Close finishes the stream if the writer still expects events, so
// an abandoned writer leaves a syntactically closed file. Callers
// that care about the final write should call Finish themselves.
func (w *Writer) Close() error {
	if w.state == ExpectingEventOrFinish {
		return w.Finish()
	}
	return nil
}

// writeAttrs emits the attribute pairs in name order, so output is
// reproducible. Attribute order carries no meaning on read.
func writeAttrs(b *strings.Builder, attrs lhef.Attrs) {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.WriteByte(' ')
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(attrs[name])
		b.WriteByte('"')
	}
}

// writeInfo emits a free-text tail, newline terminated, or nothing
// at all when the text is empty.
func writeInfo(b *strings.Builder, info string) {
	if info == "" {
		return
	}
	b.WriteString(info)
	if !strings.HasSuffix(info, "\n") {
		b.WriteByte('\n')
	}
}
