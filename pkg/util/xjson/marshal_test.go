package xjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Name   string `json:"name"`
	Action string `json:"action"`
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, []entry{{Name: "segfault", Action: "Dereferencing NULL pointer"}})
	require.NoError(t, err)

	assert.Equal(t, `[
  {
    "name": "segfault",
    "action": "Dereferencing NULL pointer"
  }
]
`, buf.String())
}

func TestEncode_NoHTMLEscape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, "a<b>&c"))
	assert.Equal(t, "\"a<b>&c\"\n", buf.String())
}

func TestEncode_MarshalErrorWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, make(chan int))
	assert.ErrorIs(t, err, ErrMarshal)
	assert.Zero(t, buf.Len())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestEncode_WriteError(t *testing.T) {
	err := Encode(failWriter{}, 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMarshal)
}

func TestPretty(t *testing.T) {
	assert.Equal(t, "{\n  \"name\": \"abort\",\n  \"action\": \"\"\n}", Pretty(entry{Name: "abort"}))
	assert.True(t, json.Valid([]byte(Pretty(map[string]int{"a": 1}))))
	assert.True(t, strings.HasPrefix(Pretty(func() {}), "<marshal error:"))
}
