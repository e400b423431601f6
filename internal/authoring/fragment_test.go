package authoring

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movegraph/internal/bootstrap"
	"movegraph/internal/domain/moveset"
	errs "movegraph/internal/errors"
)

func armbarDraft() *Draft {
	return &Draft{
		Name: "Armbar",
		Node: moveset.MoveNode{
			Parents:  []string{},
			Children: []string{"Triangle"},
			Area:     []string{"Ground"},
			Type:     []string{"Submission"},
			SubType:  moveset.SubTypePlaceholder,
		},
		Area: "Ground",
		Type: "Submission",
	}
}

func TestFormatJSONSplicesIntoMoveset(t *testing.T) {
	fragment, err := Format(armbarDraft(), bootstrap.FormatJSON)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(fragment, ",\n"))
	assert.True(t, strings.HasSuffix(fragment, "}"))

	existing := `{"Triangle": {"parents": ["Armbar"], "children": []}`
	var set moveset.Moveset
	require.NoError(t, json.Unmarshal([]byte(existing+fragment+"}"), &set))

	armbar, ok := set["Armbar"]
	require.True(t, ok)
	assert.Equal(t, []string{}, armbar.Parents)
	assert.Equal(t, []string{"Triangle"}, armbar.Children)
	assert.Equal(t, []string{"Ground"}, armbar.Area)
	assert.Equal(t, []string{"Submission"}, armbar.Type)
	assert.Equal(t, []string{"None"}, armbar.SubType)
	assert.Empty(t, set.Problems())
}

func TestFormatJSONDoesNotEscapeHTML(t *testing.T) {
	d := armbarDraft()
	d.Name = "Knee & Elbow <Escape>"

	fragment, err := Format(d, bootstrap.FormatJSON)
	require.NoError(t, err)
	assert.Contains(t, fragment, `"Knee & Elbow <Escape>": {`)
}

func TestFormatLegacy(t *testing.T) {
	fragment, err := Format(armbarDraft(), bootstrap.FormatLegacy)
	require.NoError(t, err)

	want := "\t,\n\"Armbar\":{\n" +
		"     \t\t\"parents\": [],\n" +
		"     \t\t\"children\": ['Triangle'],\n" +
		"    \t\t\"area\": Ground,\n" +
		"     \t\t\"type\": Submission,\n" +
		" \t}"
	assert.Equal(t, want, fragment)
}

func TestFormatUnknown(t *testing.T) {
	_, err := Format(armbarDraft(), "yaml")
	assert.ErrorIs(t, err, errs.ErrUnknownFormat)
}

func TestListLiteral(t *testing.T) {
	cases := []struct {
		in   []string
		want string
	}{
		{in: []string{}, want: "[]"},
		{in: []string{"A", "B"}, want: "['A', 'B']"},
		{in: []string{""}, want: "['']"},
		{in: []string{"Kesa's Grip"}, want: `["Kesa's Grip"]`},
		{in: []string{`Both ' and "`}, want: `['Both \' and "']`},
		{in: []string{`back\slash`}, want: `['back\\slash']`},
		{in: []string{"tab\there"}, want: `['tab\there']`},
		{in: []string{"Ude-garami ✓"}, want: "['Ude-garami ✓']"},
		{in: []string{"\x01"}, want: `['\x01']`},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, listLiteral(c.in), "%q", c.in)
	}
}
