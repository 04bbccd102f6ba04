package planner

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itinera/pkg/utils"
)

func TestDetectInvalidDestination(t *testing.T) {
	cases := map[string]bool{
		"INVALID_DESTINATION: not a place":                        true,
		"invalid_destination: lowercase still counts":             true,
		"I'm sorry, but Zzyzxland is not a real place.":           true,
		"That does not appear to be a real location on any map.":  true,
		`{"days": [], "tips": ["Paris is a valid destination!"]}`: false,
		"": false,
	}

	for raw, want := range cases {
		err := DetectInvalidDestination(raw)
		if want {
			assert.ErrorIs(t, err, utils.ErrInvalidDestination, raw)
		} else {
			assert.NoError(t, err, raw)
		}
	}
}

func TestExtractFenced(t *testing.T) {
	body, ok := ExtractFenced("prefix\n```json\n{\"a\": 1}\n```\nsuffix")
	require.True(t, ok)
	assert.Equal(t, `{"a": 1}`, body)

	body, ok = ExtractFenced("```\n{\"b\": 2}```")
	require.True(t, ok)
	assert.Equal(t, `{"b": 2}`, body)

	_, ok = ExtractFenced("```bash\necho hi\n```")
	assert.False(t, ok)

	_, ok = ExtractFenced(`{"a": 1}`)
	assert.False(t, ok)
}

func TestExtractBracedPicksLargestBalancedObject(t *testing.T) {
	raw := `Note {"x": 1} and the plan {"days": [{"day": 1}], "note": "use } carefully"} done`
	got, ok := ExtractBraced(raw)
	require.True(t, ok)
	assert.Equal(t, `{"days": [{"day": 1}], "note": "use } carefully"}`, got)
}

func TestExtractBracedUnbalanced(t *testing.T) {
	_, ok := ExtractBraced(`{"days": [ {"day": 1 }`)
	assert.False(t, ok)

	_, ok = ExtractBraced("no braces here")
	assert.False(t, ok)
}

func TestStripComments(t *testing.T) {
	in := `{
  // leading comment
  "url": "https://example.com/a//b", /* block */
  "list": [1, 2, 3,],
  "quote": "say \"hi\" // not a comment",
}`
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(StripComments(in)), &out))
	assert.Equal(t, "https://example.com/a//b", out["url"])
	assert.Equal(t, `say "hi" // not a comment`, out["quote"])
	assert.Len(t, out["list"], 3)
}

func TestExtractJSON(t *testing.T) {
	doc, err := ExtractJSON(parisDayTwoOnly)
	require.NoError(t, err)
	assert.Contains(t, doc, "days")
	assert.Contains(t, doc, "budgetBreakdown")

	doc, err = ExtractJSON("Sure! {\"days\": [], \"tips\": [],} Hope this helps")
	require.NoError(t, err)
	assert.Contains(t, doc, "tips")
}

func TestExtractJSONFailures(t *testing.T) {
	_, err := ExtractJSON("I cannot help with that")
	assert.ErrorIs(t, err, utils.ErrGeneration)

	_, err = ExtractJSON(`{"days": [1, 2,, 3]}`)
	assert.ErrorIs(t, err, utils.ErrGeneration)
	assert.Contains(t, err.Error(), "invalid JSON")

	_, err = ExtractJSON("INVALID_DESTINATION: nope {\"days\": []}")
	assert.ErrorIs(t, err, utils.ErrInvalidDestination)
}
