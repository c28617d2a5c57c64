package dbg

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string
	Count int
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, Dump(&buf, sample{Name: "a", Count: 2}))
	out := buf.String()
	assert.Contains(t, out, "dbg.sample{")
	assert.Contains(t, out, `"a"`)
	assert.Contains(t, out, "Count:")
}
