package encode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/beevik/etree"

	"github.com/hepstream/lhef"
)

func testRunInfo() *lhef.RunInfo {
	return &lhef.RunInfo{
		IDBMUP: [2]int32{2212, 2212},
		EBMUP:  [2]float64{7000, 7000},
		PDFSUP: [2]int32{230000, 230000},
		IDWTUP: 2,
		NPRUP:  1,
		XSECUP: []float64{120588124.02},
		XERRUP: []float64{702517.48228},
		XMAXUP: []float64{94290.49},
		LPRUP:  []int32{1},
	}
}

func testEvent() *lhef.Event {
	return &lhef.Event{
		NUP:    2,
		IDRUP:  1,
		XWGTUP: 84515.12,
		SCALUP: 91.188,
		AQEDUP: 0.007546771,
		AQCDUP: 0.1190024,
		IDUP:   []int32{1, 21},
		ISTUP:  []int32{-1, 1},
		MOTHUP: [][2]int32{{0, 0}, {1, 0}},
		ICOLUP: [][2]int32{{503, 0}, {501, 502}},
		PUP: [][5]float64{
			{0, 0, 4.7789443449, 4.7789443449, 0},
			{0, 0, -1240.3761329, 1240.3761329, 0},
		},
		VTIMUP: []float64{0, 0},
		SPINUP: []float64{1, -1},
	}
}

func TestOpeningTag(t *testing.T) {
	var buf bytes.Buffer
	if _, err := NewWriter(&buf, "2.0"); err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if got := buf.String(); got != "<LesHouchesEvents version=\"2.0\">\n" {
		t.Errorf("opening tag: got %q", got)
	}
}

func TestHeaderOutput(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, "1.0")
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := w.Header("some header"); err != nil {
		t.Fatalf("Header: %v", err)
	}
	if !strings.Contains(buf.String(), "<!--\nsome header\n-->\n") {
		t.Errorf("header block: got %q", buf.String())
	}
}

func TestXMLHeaderOutput(t *testing.T) {
	doc := etree.NewDocument()
	root := doc.CreateElement("header")
	root.CreateAttr("attr0", "val0")
	root.SetText("some xml header")

	var buf bytes.Buffer
	w, err := NewWriter(&buf, "1.0")
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := w.XMLHeader(root); err != nil {
		t.Fatalf("XMLHeader: %v", err)
	}
	want := "<header attr0=\"val0\">\nsome xml header\n</header>\n"
	if !strings.Contains(buf.String(), want) {
		t.Errorf("xml header block: got %q, want it to contain %q", buf.String(), want)
	}
}

func TestXMLHeaderWrapsForeignRoot(t *testing.T) {
	doc := etree.NewDocument()
	root := doc.CreateElement("MGVersion")
	root.SetText("5.2.3.3")

	var buf bytes.Buffer
	w, err := NewWriter(&buf, "1.0")
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := w.XMLHeader(root); err != nil {
		t.Fatalf("XMLHeader: %v", err)
	}
	want := "<header>\n<MGVersion>5.2.3.3</MGVersion>\n</header>\n"
	if !strings.Contains(buf.String(), want) {
		t.Errorf("wrapped header: got %q, want it to contain %q", buf.String(), want)
	}
}

func TestStateProtocol(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, "1.0")
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	before := buf.Len()

	// Event before run info.
	err = w.Event(testEvent())
	var stateErr *StateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("Event before init: expected *StateError, got %v", err)
	}
	if stateErr.State != ExpectingHeaderOrInit || stateErr.Op != "event" {
		t.Errorf("state error: got %v", stateErr)
	}
	if buf.Len() != before {
		t.Errorf("stream grew by %d bytes on rejected call", buf.Len()-before)
	}

	// Finish before run info.
	if err := w.Finish(); !errors.As(err, &stateErr) {
		t.Fatalf("Finish before init: expected *StateError, got %v", err)
	}

	if err := w.RunInfo(testRunInfo()); err != nil {
		t.Fatalf("RunInfo: %v", err)
	}

	// Header after run info.
	if err := w.Header("late"); !errors.As(err, &stateErr) {
		t.Fatalf("Header after init: expected *StateError, got %v", err)
	}
	if stateErr.State != ExpectingEventOrFinish || stateErr.Op != "header" {
		t.Errorf("state error: got %v", stateErr)
	}

	// Second run info.
	if err := w.RunInfo(testRunInfo()); !errors.As(err, &stateErr) {
		t.Fatalf("second RunInfo: expected *StateError, got %v", err)
	}

	if err := w.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if err := w.Finish(); !errors.As(err, &stateErr) {
		t.Fatalf("double Finish: expected *StateError, got %v", err)
	}
	if stateErr.State != Finished {
		t.Errorf("state after finish: got %v", stateErr.State)
	}
}

func TestMismatchedSubprocesses(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, "1.0")
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	before := buf.Len()
	run := testRunInfo()
	run.NPRUP = 2
	if err := w.RunInfo(run); !errors.Is(err, ErrMismatchedSubprocesses) {
		t.Fatalf("expected ErrMismatchedSubprocesses, got %v", err)
	}
	if buf.Len() != before {
		t.Errorf("stream grew by %d bytes on rejected run info", buf.Len()-before)
	}
	// The failed validation must not consume the init slot.
	if err := w.RunInfo(testRunInfo()); err != nil {
		t.Fatalf("RunInfo after rejection: %v", err)
	}
}

func TestMismatchedParticles(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, "1.0")
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := w.RunInfo(testRunInfo()); err != nil {
		t.Fatalf("RunInfo: %v", err)
	}
	before := buf.Len()
	ev := testEvent()
	ev.SPINUP = ev.SPINUP[:1]
	if err := w.Event(ev); !errors.Is(err, ErrMismatchedParticles) {
		t.Fatalf("expected ErrMismatchedParticles, got %v", err)
	}
	if buf.Len() != before {
		t.Errorf("stream grew by %d bytes on rejected event", buf.Len()-before)
	}
}

func TestImplicitFinish(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, "1.0")
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := w.RunInfo(testRunInfo()); err != nil {
		t.Fatalf("RunInfo: %v", err)
	}
	if err := w.Event(testEvent()); err != nil {
		t.Fatalf("Event: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !strings.HasSuffix(buf.String(), "</LesHouchesEvents>\n") {
		t.Errorf("output does not end with closing tag: %q", buf.String())
	}
	// Close after an explicit or implicit finish is a no-op.
	before := buf.Len()
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if buf.Len() != before {
		t.Errorf("second Close wrote %d bytes", buf.Len()-before)
	}
}

// failAfter fails every write after the first n.
type failAfter struct {
	n    int
	err  error
	data bytes.Buffer
}

func (f *failAfter) Write(p []byte) (int, error) {
	if f.n <= 0 {
		return 0, f.err
	}
	f.n--
	return f.data.Write(p)
}

func TestFailureLatching(t *testing.T) {
	ioErr := errors.New("disk full")
	out := &failAfter{n: 1, err: ioErr}
	w, err := NewWriter(out, "1.0")
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	// The stream write fails: the call reports the underlying error.
	if err := w.RunInfo(testRunInfo()); !errors.Is(err, ioErr) {
		t.Fatalf("expected the io error, got %v", err)
	}
	// The writer is latched: later calls attempt the write but
	// report the sticky failure, not a fresh io error.
	out.n = 100
	before := out.data.Len()
	if err := w.Event(testEvent()); !errors.Is(err, ErrWriterFailed) {
		t.Fatalf("expected ErrWriterFailed, got %v", err)
	}
	if out.data.Len() == before {
		t.Error("latched writer did not flush the attempted write")
	}
	if err := w.Finish(); !errors.Is(err, ErrWriterFailed) {
		t.Fatalf("Finish on failed writer: expected ErrWriterFailed, got %v", err)
	}
}
