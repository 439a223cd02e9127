package syntax

// Literal tags delimiting the blocks of an LHEF stream. Block starts
// are matched as prefixes of left-trimmed lines, block ends as whole
// trimmed lines.
const (
	TagOpen      = "<LesHouchesEvents version="
	CommentStart = "<!--"
	CommentEnd   = "-->"
	HeaderStart  = "<header"
	HeaderEnd    = "</header>"
	InitStart    = "<init"
	InitEnd      = "</init>"
	EventStart   = "<event"
	EventEnd     = "</event>"
	LastLine     = "</LesHouchesEvents>"
)
