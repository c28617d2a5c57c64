package dbg

import (
	"io"

	"github.com/kr/pretty"
)

// Dump writes a Go syntax representation of v, with field names, for
// eyeballing intermediate results. The network types are plain values, so
// this shows everything a conversion produced.
func Dump(w io.Writer, v interface{}) error {
	_, err := pretty.Fprintf(w, "%# v\n", v)
	return err
}
