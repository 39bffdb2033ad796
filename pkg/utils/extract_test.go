package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONCleanInputPassesThrough(t *testing.T) {
	input := `{"place":"Hampi","reason":"ruins"}`

	extracted, ok := ExtractJSON(input)
	require.True(t, ok)
	assert.JSONEq(t, input, string(extracted))

	// Running the result through again yields the same value.
	again, ok := ExtractJSON(string(extracted))
	require.True(t, ok)
	assert.Equal(t, string(extracted), string(again))
}

func TestExtractJSONFencedBlock(t *testing.T) {
	input := "Here is your destination list:\n```json\n[{\"place\": \"Hampi\", \"reason\": \"UNESCO ruins on a budget\"}]\n```\nLet me know if you need more options!"

	extracted, ok := ExtractJSON(input)
	require.True(t, ok)

	var places []map[string]string
	require.NoError(t, json.Unmarshal(extracted, &places))
	require.Len(t, places, 1)
	assert.Equal(t, "Hampi", places[0]["place"])
}

func TestExtractJSONBareSpanFallback(t *testing.T) {
	input := `Sure! Here's your data: {"stays": [{"name": "Zostel"}]} hope that helps`

	extracted, ok := ExtractJSON(input)
	require.True(t, ok)

	var payload struct {
		Stays []struct {
			Name string `json:"name"`
		} `json:"stays"`
	}
	require.NoError(t, json.Unmarshal(extracted, &payload))
	require.Len(t, payload.Stays, 1)
	assert.Equal(t, "Zostel", payload.Stays[0].Name)
}

func TestExtractJSONArrayBeforeObject(t *testing.T) {
	input := `options: [1, 2, 3] and also {"a": 1}`

	extracted, ok := ExtractJSON(input)
	require.True(t, ok)
	assert.Equal(t, "[1, 2, 3]", string(extracted))
}

func TestExtractJSONNestedStructures(t *testing.T) {
	input := "```json\n{\"itinerary\": [{\"day\": 1, \"steps\": [{\"type\": \"spot\", \"name\": \"Virupaksha Temple\"}]}]}\n```"

	extracted, ok := ExtractJSON(input)
	require.True(t, ok)
	assert.True(t, json.Valid(extracted))
}

func TestExtractJSONBracesInsideStrings(t *testing.T) {
	input := `prefix {"note": "beware of } in text", "n": 1} suffix`

	extracted, ok := ExtractJSON(input)
	require.True(t, ok)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(extracted, &payload))
	assert.Equal(t, "beware of } in text", payload["note"])
}

func TestExtractJSONRejectsNonJSON(t *testing.T) {
	for _, input := range []string{
		"",
		"   ",
		"The trip sounds wonderful, enjoy your stay!",
		"{not valid json",
		"```json\n```",
	} {
		extracted, ok := ExtractJSON(input)
		assert.False(t, ok, "input %q", input)
		assert.Nil(t, extracted)
	}
}

func TestCleanFencesStripsChatter(t *testing.T) {
	input := "Here's the travel plan:\n```json\n{\"day\": 1}\n```"
	assert.Equal(t, `{"day": 1}`, CleanFences(input))
}
