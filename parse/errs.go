package parse

import (
	"errors"
	"fmt"

	"github.com/hepstream/lhef/syntax"
)

// ErrMissingVersion reports an opening tag without a version
// attribute.
var ErrMissingVersion = errors.New("version information missing")

// BadFirstLineError reports a stream that does not open with the
// LesHouchesEvents tag.
type BadFirstLineError struct {
	Line string
}

func (e *BadFirstLineError) Error() string {
	return fmt.Sprintf("first line %q does not start with %q", e.Line, syntax.TagOpen)
}

// UnsupportedVersionError reports a version literal outside the
// supported set.
type UnsupportedVersionError struct {
	Version string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported version %q, only 1.0, 2.0 and 3.0 are supported", e.Version)
}

// BadHeaderStartError reports an unrecognized line where a comment,
// header or init block was expected.
type BadHeaderStartError struct {
	Line string
}

func (e *BadHeaderStartError) Error() string {
	return fmt.Sprintf("unrecognized line %q, expected a header starting with %q or %q, or the init block starting with %q",
		e.Line, syntax.CommentStart, syntax.HeaderStart, syntax.InitStart)
}

// BadEventStartError reports an unrecognized line where an event
// block or the closing outer tag was expected.
type BadEventStartError struct {
	Line string
}

func (e *BadEventStartError) Error() string {
	return fmt.Sprintf("unrecognized line %q, expected an event starting with %q or the closing %q",
		e.Line, syntax.EventStart, syntax.LastLine)
}

// EndOfFileError reports a stream that ended inside a block before
// its closing tag.
type EndOfFileError struct {
	Block string
}

func (e *EndOfFileError) Error() string {
	return fmt.Sprintf("%s block has no closing tag", e.Block)
}
