package syntax

import (
	"fmt"
	"strings"
)

// TagError reports a malformed opening tag.
type TagError struct {
	Tag string
}

func (e *TagError) Error() string {
	return fmt.Sprintf("malformed tag %q", e.Tag)
}

// ParseTagAttrs extracts the name="value" pairs from an opening tag
// line such as `<init weight="nominal">`. Values may be delimited by
// single or double quotes and cannot contain the delimiting quote;
// there is no escaping. A tag without attributes yields an empty map.
func ParseTagAttrs(tag string) (map[string]string, error) {
	rest, err := attrText(tag)
	if err != nil {
		return nil, err
	}
	attrs := map[string]string{}
	for {
		name, value, rem, ok, err := nextAttr(rest)
		if err != nil {
			return nil, err
		}
		if !ok {
			return attrs, nil
		}
		attrs[name] = value
		rest = rem
	}
}

// attrText strips the tag name and the closing '>' from a tag line,
// leaving only the attribute text.
func attrText(tag string) (string, error) {
	t := strings.TrimSpace(tag)
	if !strings.HasSuffix(t, ">") {
		return "", &TagError{Tag: tag}
	}
	t = t[:len(t)-1]
	i := strings.IndexFunc(t, isSpace)
	if i < 0 {
		return "", nil
	}
	return strings.TrimLeft(t[i+1:], spaceCutset), nil
}

func nextAttr(s string) (name, value, rem string, ok bool, err error) {
	i := strings.IndexFunc(s, func(r rune) bool {
		return isSpace(r) || r == '='
	})
	if i < 0 {
		return "", "", s, false, nil
	}
	name = s[:i]
	rem = strings.TrimLeft(s[i:], spaceCutset)
	if len(rem) == 0 || rem[0] != '=' {
		return "", "", "", false, &TagError{Tag: s}
	}
	rem = strings.TrimLeft(rem[1:], spaceCutset)
	if len(rem) == 0 || (rem[0] != '\'' && rem[0] != '"') {
		return "", "", "", false, &TagError{Tag: s}
	}
	quote := rem[0]
	rem = rem[1:]
	end := strings.IndexByte(rem, quote)
	if end < 0 {
		return "", "", "", false, &TagError{Tag: s}
	}
	value = rem[:end]
	rem = strings.TrimLeft(rem[end+1:], spaceCutset)
	return name, value, rem, true, nil
}

const spaceCutset = " \t\r\n"

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}
