// Package parse reads Les Houches Event Files. A Reader consumes the
// version line, the optional header blocks and the run information
// when it is constructed, then yields events one at a time.
package parse

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"

	"github.com/hepstream/lhef"
	"github.com/hepstream/lhef/syntax"
)

// Reader is a pull parser for an LHEF stream. It owns the underlying
// reader exclusively; reading stops permanently at the first grammar
// violation.
type Reader struct {
	lines     *lineReader
	version   string
	header    string
	xmlHeader *lhef.XMLTree
	runInfo   lhef.RunInfo
	done      bool
}

// NewReader parses the opening tag, the header material and the
// <init> block of the stream and returns a Reader positioned before
// the first event.
func NewReader(r io.Reader) (*Reader, error) {
	lines := newLineReader(r)
	version, err := parseVersion(lines)
	if err != nil {
		return nil, err
	}
	header, xmlHeader, initLine, err := parseHeader(lines)
	if err != nil {
		return nil, err
	}
	runInfo, err := parseInit(initLine, lines)
	if err != nil {
		return nil, err
	}
	return &Reader{
		lines:     lines,
		version:   version,
		header:    header,
		xmlHeader: xmlHeader,
		runInfo:   *runInfo,
	}, nil
}

// Version returns the LHEF version declared on the opening tag.
func (r *Reader) Version() string {
	return r.version
}

// Header returns the text of the comment header, without the
// delimiter lines. It is empty if the stream has no comment header.
func (r *Reader) Header() string {
	return r.header
}

// XMLHeader returns the parsed <header> tree, or nil if the stream
// has none.
func (r *Reader) XMLHeader() *lhef.XMLTree {
	return r.xmlHeader
}

// RunInfo returns the run information from the <init> block.
func (r *Reader) RunInfo() *lhef.RunInfo {
	return &r.runInfo
}

// Event returns the next event, or (nil, nil) once the closing
// </LesHouchesEvents> tag has been seen. After that it keeps
// returning (nil, nil) without touching the stream.
func (r *Reader) Event() (*lhef.Event, error) {
	if r.done {
		return nil, nil
	}
	line, err := r.lines.next()
	if err == io.EOF {
		line = ""
	} else if err != nil {
		return nil, err
	}
	switch {
	case strings.HasPrefix(trimLeft(line), syntax.EventStart):
		return parseEvent(line, r.lines)
	case strings.TrimSpace(line) == syntax.LastLine:
		r.done = true
		return nil, nil
	default:
		return nil, &BadEventStartError{Line: line}
	}
}

func trimLeft(line string) string {
	return strings.TrimLeft(line, " \t\r\n")
}

func parseVersion(lines *lineReader) (string, error) {
	line, err := lines.next()
	if err == io.EOF {
		line = ""
	} else if err != nil {
		return "", err
	}
	parts := strings.Split(strings.TrimSpace(line), `"`)
	if parts[0] != syntax.TagOpen {
		return "", &BadFirstLineError{Line: line}
	}
	if len(parts) < 2 {
		return "", ErrMissingVersion
	}
	version := parts[1]
	if !lhef.SupportedVersion(version) {
		return "", &UnsupportedVersionError{Version: version}
	}
	if len(parts) < 3 || parts[2] != ">" {
		return "", &BadFirstLineError{Line: line}
	}
	return version, nil
}

// parseHeader classifies lines into comment, xml header or init until
// the init opening line is found. The init line is returned unparsed
// so its attributes can be extracted later.
func parseHeader(lines *lineReader) (header string, xmlHeader *lhef.XMLTree, initLine string, err error) {
	for {
		line, err := lines.next()
		if err == io.EOF {
			line = ""
		} else if err != nil {
			return "", nil, "", err
		}
		switch {
		case strings.HasPrefix(trimLeft(line), syntax.CommentStart):
			if strings.TrimSpace(line) != syntax.CommentStart {
				return "", nil, "", &BadHeaderStartError{Line: line}
			}
			header, err = readBlock(lines, syntax.CommentEnd)
			if err != nil {
				return "", nil, "", err
			}
		case strings.HasPrefix(trimLeft(line), syntax.HeaderStart):
			body, err := readBlock(lines, syntax.HeaderEnd)
			if err != nil {
				return "", nil, "", err
			}
			xmlHeader, err = parseXMLHeader(line + body + syntax.HeaderEnd)
			if err != nil {
				return "", nil, "", err
			}
		case strings.HasPrefix(trimLeft(line), syntax.InitStart):
			return header, xmlHeader, line, nil
		default:
			return "", nil, "", &BadHeaderStartError{Line: line}
		}
	}
}

// readBlock accumulates lines verbatim up to, and not including, the
// line whose trimmed form equals end.
func readBlock(lines *lineReader, end string) (string, error) {
	var b strings.Builder
	for {
		line, err := lines.next()
		if err == io.EOF {
			return "", &EndOfFileError{Block: "header"}
		}
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) == end {
			return b.String(), nil
		}
		b.WriteString(line)
	}
}

// parseXMLHeader hands the accumulated header text to the external
// element tree parser.
func parseXMLHeader(text string) (*lhef.XMLTree, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(text); err != nil {
		return nil, fmt.Errorf("header block: %w", err)
	}
	return doc.Root(), nil
}

func parseInit(initLine string, lines *lineReader) (*lhef.RunInfo, error) {
	line, err := recordLine(lines)
	if err != nil {
		return nil, err
	}
	f := syntax.NewFields(line)
	run := &lhef.RunInfo{}
	for i := range run.IDBMUP {
		if run.IDBMUP[i], err = f.Int(fmt.Sprintf("IDBMUP(%d)", i+1)); err != nil {
			return nil, err
		}
	}
	for i := range run.EBMUP {
		if run.EBMUP[i], err = f.Float(fmt.Sprintf("EBMUP(%d)", i+1)); err != nil {
			return nil, err
		}
	}
	for i := range run.PDFGUP {
		if run.PDFGUP[i], err = f.Int(fmt.Sprintf("PDFGUP(%d)", i+1)); err != nil {
			return nil, err
		}
	}
	for i := range run.PDFSUP {
		if run.PDFSUP[i], err = f.Int(fmt.Sprintf("PDFSUP(%d)", i+1)); err != nil {
			return nil, err
		}
	}
	if run.IDWTUP, err = f.Int("IDWTUP"); err != nil {
		return nil, err
	}
	if run.NPRUP, err = f.Int("NPRUP"); err != nil {
		return nil, err
	}
	for i := int32(0); i < run.NPRUP; i++ {
		line, err := recordLine(lines)
		if err != nil {
			return nil, err
		}
		f := syntax.NewFields(line)
		xsec, err := f.Float(fmt.Sprintf("XSECUP(%d)", i+1))
		if err != nil {
			return nil, err
		}
		xerr, err := f.Float(fmt.Sprintf("XERRUP(%d)", i+1))
		if err != nil {
			return nil, err
		}
		xmax, err := f.Float(fmt.Sprintf("XMAXUP(%d)", i+1))
		if err != nil {
			return nil, err
		}
		lpr, err := f.Int(fmt.Sprintf("LPRUP(%d)", i+1))
		if err != nil {
			return nil, err
		}
		run.XSECUP = append(run.XSECUP, xsec)
		run.XERRUP = append(run.XERRUP, xerr)
		run.XMAXUP = append(run.XMAXUP, xmax)
		run.LPRUP = append(run.LPRUP, lpr)
	}
	if run.Info, err = readInfo(lines, syntax.InitEnd, "init"); err != nil {
		return nil, err
	}
	if run.Attr, err = syntax.ParseTagAttrs(initLine); err != nil {
		return nil, err
	}
	return run, nil
}

func parseEvent(eventLine string, lines *lineReader) (*lhef.Event, error) {
	line, err := recordLine(lines)
	if err != nil {
		return nil, err
	}
	f := syntax.NewFields(line)
	ev := &lhef.Event{}
	if ev.NUP, err = f.Int("NUP"); err != nil {
		return nil, err
	}
	if ev.IDRUP, err = f.Int("IDRUP"); err != nil {
		return nil, err
	}
	if ev.XWGTUP, err = f.Float("XWGTUP"); err != nil {
		return nil, err
	}
	if ev.SCALUP, err = f.Float("SCALUP"); err != nil {
		return nil, err
	}
	if ev.AQEDUP, err = f.Float("AQEDUP"); err != nil {
		return nil, err
	}
	if ev.AQCDUP, err = f.Float("AQCDUP"); err != nil {
		return nil, err
	}
	for i := int32(0); i < ev.NUP; i++ {
		line, err := recordLine(lines)
		if err != nil {
			return nil, err
		}
		f := syntax.NewFields(line)
		id, err := f.Int(fmt.Sprintf("IDUP(%d)", i+1))
		if err != nil {
			return nil, err
		}
		status, err := f.Int(fmt.Sprintf("ISTUP(%d)", i+1))
		if err != nil {
			return nil, err
		}
		var mothers, colour [2]int32
		for j := range mothers {
			if mothers[j], err = f.Int(fmt.Sprintf("MOTHUP(%d,%d)", i+1, j+1)); err != nil {
				return nil, err
			}
		}
		for j := range colour {
			if colour[j], err = f.Int(fmt.Sprintf("ICOLUP(%d,%d)", i+1, j+1)); err != nil {
				return nil, err
			}
		}
		var p [5]float64
		for j := range p {
			if p[j], err = f.Float(fmt.Sprintf("PUP(%d,%d)", i+1, j+1)); err != nil {
				return nil, err
			}
		}
		lifetime, err := f.Float(fmt.Sprintf("VTIMUP(%d)", i+1))
		if err != nil {
			return nil, err
		}
		spin, err := f.Float(fmt.Sprintf("SPINUP(%d)", i+1))
		if err != nil {
			return nil, err
		}
		ev.IDUP = append(ev.IDUP, id)
		ev.ISTUP = append(ev.ISTUP, status)
		ev.MOTHUP = append(ev.MOTHUP, mothers)
		ev.ICOLUP = append(ev.ICOLUP, colour)
		ev.PUP = append(ev.PUP, p)
		ev.VTIMUP = append(ev.VTIMUP, lifetime)
		ev.SPINUP = append(ev.SPINUP, spin)
	}
	if ev.Info, err = readInfo(lines, syntax.EventEnd, "event"); err != nil {
		return nil, err
	}
	if ev.Attr, err = syntax.ParseTagAttrs(eventLine); err != nil {
		return nil, err
	}
	return ev, nil
}

// recordLine reads one numeric record line. End of stream yields an
// empty line so the field codec reports which field was missing.
func recordLine(lines *lineReader) (string, error) {
	line, err := lines.next()
	if err == io.EOF {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return line, nil
}

// readInfo accumulates free text verbatim up to, and not including,
// the closing tag of the block.
func readInfo(lines *lineReader, end, block string) (string, error) {
	var b strings.Builder
	for {
		line, err := lines.next()
		if err == io.EOF {
			return "", &EndOfFileError{Block: block}
		}
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) == end {
			return b.String(), nil
		}
		b.WriteString(line)
	}
}
