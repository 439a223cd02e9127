package commands

import (
	"io"

	"github.com/hepstream/lhef"
	"github.com/hepstream/lhef/encode"
	"github.com/hepstream/lhef/parse"
)

// transcribe copies a parsed stream to out in normalized form,
// keeping the events for which keep returns true. A nil keep keeps
// everything.
func transcribe(r *parse.Reader, out io.Writer, keep func(*lhef.Event) (bool, error)) error {
	w, err := encode.NewWriter(out, r.Version())
	if err != nil {
		return err
	}
	defer w.Close()
	if xml := r.XMLHeader(); xml != nil {
		if err := w.XMLHeader(xml); err != nil {
			return err
		}
	}
	if r.Header() != "" {
		if err := w.Header(r.Header()); err != nil {
			return err
		}
	}
	if err := w.RunInfo(r.RunInfo()); err != nil {
		return err
	}
	for {
		ev, err := r.Event()
		if err != nil {
			return err
		}
		if ev == nil {
			return w.Finish()
		}
		if keep != nil {
			ok, err := keep(ev)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
		}
		if err := w.Event(ev); err != nil {
			return err
		}
	}
}
