package record

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `1,A,6,"3,4"
2,B,6,"1,1"
3,A,6,"4,3"
4,B,6,"5,2"
`

func TestRead(t *testing.T) {
	records, err := Read(strings.NewReader(sample))
	require.NoError(t, err)

	want := []Record{
		{Index: 1, Person: "A", Pips: 6, Rolls: []int{3, 4}},
		{Index: 2, Person: "B", Pips: 6, Rolls: []int{1, 1}},
		{Index: 3, Person: "A", Pips: 6, Rolls: []int{4, 3}},
		{Index: 4, Person: "B", Pips: 6, Rolls: []int{5, 2}},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestReadMalformed(t *testing.T) {
	cases := map[string]string{
		"too few fields":  "1,A,6\n",
		"bad index":       "x,A,6,\"1,2\"\n",
		"bad pips":        "1,A,six,\"1,2\"\n",
		"bad roll":        "1,A,6,\"1,z\"\n",
		"roll too large":  "1,A,6,\"1,7\"\n",
		"zero pips":       "1,A,0,\"1,1\"\n",
		"second row bad":  "1,A,6,\"1,2\"\n2,B,6,\"0,2\"\n",
		"unclosed quotes": "1,A,6,\"1,2\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Read(strings.NewReader(input))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

type failingReader struct{ err error }

func (f failingReader) Read([]byte) (int, error) { return 0, f.err }

func TestReadIOErrorIsNotMalformed(t *testing.T) {
	src := io.MultiReader(strings.NewReader("1,A,6,\"3,4\"\n"), failingReader{err: assert.AnError})

	_, err := Read(src)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, ErrMalformed)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteFileReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rolls.csv")
	in := []Record{
		{Index: 1, Person: "Pablo", Pips: 6, Rolls: []int{2, 5}},
		{Index: 2, Person: "Arya, the Bold", Pips: 8, Rolls: []int{8, 1}},
	}
	require.NoError(t, WriteFile(path, in))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1,Pablo,6,\"2,5\"\n2,\"Arya, the Bold\",8,\"8,1\"\n", string(raw))

	out, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestRollField(t *testing.T) {
	assert.Equal(t, "3,5", Record{Rolls: []int{3, 5}}.RollField())
	assert.Equal(t, "6", Record{Rolls: []int{6}}.RollField())
}
