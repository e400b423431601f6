package authoring

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompterAsk(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("first\r\nsecond\nlast"), &out)

	for _, want := range []string{"first", "second", "last"} {
		got, err := p.Ask("> ")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := p.Ask("> ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "> > > > ", out.String())
}

func TestWriterSink(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, WriterSink{W: &out}.Write(",\n\"Armbar\": {}"))
	assert.Equal(t, ",\n\"Armbar\": {}\n", out.String())
}
