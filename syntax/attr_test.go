package syntax

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseTagAttrs(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want map[string]string
	}{
		{
			name: "no attributes",
			tag:  "<init>",
			want: map[string]string{},
		},
		{
			name: "double quoted",
			tag:  `<init testattribute="testvalue">`,
			want: map[string]string{"testattribute": "testvalue"},
		},
		{
			name: "single quoted and empty value",
			tag:  `<event attr0="t0" attr1=''>`,
			want: map[string]string{"attr0": "t0", "attr1": ""},
		},
		{
			name: "opposite quote inside value",
			tag:  `<event note='say "hi"'>`,
			want: map[string]string{"note": `say "hi"`},
		},
		{
			name: "whitespace around equals",
			tag:  `<init a = "b"  c= 'd'>`,
			want: map[string]string{"a": "b", "c": "d"},
		},
		{
			name: "surrounding whitespace",
			tag:  "  <init n=\"2\">  \n",
			want: map[string]string{"n": "2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTagAttrs(tt.tag)
			if err != nil {
				t.Fatalf("ParseTagAttrs(%q): %v", tt.tag, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("attrs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseTagAttrsErrors(t *testing.T) {
	bad := []string{
		"<init",                // no closing >
		`<init a b="c">`,       // name without =
		`<init a=b>`,           // unquoted value
		`<init a="b>`,          // unterminated value
		`<event attr0='t0" x>`, // mismatched quotes
	}
	for _, tag := range bad {
		if _, err := ParseTagAttrs(tag); err == nil {
			t.Errorf("ParseTagAttrs(%q): expected error", tag)
		} else {
			var tagErr *TagError
			if !errors.As(err, &tagErr) {
				t.Errorf("ParseTagAttrs(%q): expected *TagError, got %T", tag, err)
			}
		}
	}
}
