package commands

import (
	"testing"

	"github.com/expr-lang/expr"

	"github.com/hepstream/lhef"
)

func TestEvalFilter(t *testing.T) {
	ev := &lhef.Event{NUP: 4, IDRUP: 1, XWGTUP: 84515.12, SCALUP: 91.188}
	tests := []struct {
		src  string
		want bool
	}{
		{"NUP > 2", true},
		{"NUP > 4", false},
		{"IDRUP == 1 && XWGTUP > 0", true},
		{"SCALUP < 91", false},
	}
	for _, tt := range tests {
		prg, err := expr.Compile(tt.src, expr.AsBool())
		if err != nil {
			t.Fatalf("Compile(%q): %v", tt.src, err)
		}
		got, err := evalFilter(prg, ev)
		if err != nil {
			t.Fatalf("evalFilter(%q): %v", tt.src, err)
		}
		if got != tt.want {
			t.Errorf("%q: got %v, want %v", tt.src, got, tt.want)
		}
	}
}
