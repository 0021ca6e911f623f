package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"recpipe/internal/models"
)

func TestMergeMatching_AppendsLines(t *testing.T) {
	person := models.Record{"name": "C-3PO", "dialogue": []any{"existing line"}}

	table := map[string][]string{
		"C-3PO": {"Did you hear that?", "We're doomed!"},
		"R2-D2": {"beep, beep, boop."},
	}

	MergeMatching(person, table, "name", "dialogue")

	assert.Equal(t, []any{"existing line", "Did you hear that?", "We're doomed!"}, person["dialogue"])
}

func TestMergeMatching_NoMatchLeavesRecordAlone(t *testing.T) {
	person := models.Record{"name": "Leia Organa", "dialogue": []any{}}

	MergeMatching(person, map[string][]string{"C-3PO": {"line"}}, "name", "dialogue")

	assert.Equal(t, []any{}, person["dialogue"])
}

func TestMergeMatching_CreatesMergeField(t *testing.T) {
	person := models.Record{"name": "R2-D2"}

	MergeMatching(person, map[string][]string{"R2-D2": {"boop, beeeep!"}}, "name", "dialogue")

	assert.Equal(t, []any{"boop, beeeep!"}, person["dialogue"])
}

func TestDedupeAccumulate_FirstSeenOrder(t *testing.T) {
	collection := models.Collection{
		{"values": []any{"a", "b"}},
		{"values": []any{"a", "c"}},
	}

	extract := func(record models.Record) []any {
		values, _ := record["values"].([]any)

		return values
	}

	assert.Equal(t, []any{"a", "b", "c"}, DedupeAccumulate(collection, extract))
}

func TestDedupeAccumulate_SkipsNil(t *testing.T) {
	collection := models.Collection{
		{"values": []any{nil, "a", nil, "b", "a"}},
	}

	extract := func(record models.Record) []any {
		values, _ := record["values"].([]any)

		return values
	}

	assert.Equal(t, []any{"a", "b"}, DedupeAccumulate(collection, extract))
}

func TestDedupeAccumulate_RecordValues(t *testing.T) {
	// Keyword exports sometimes carry object-valued entries; those must dedupe
	// by deep equality instead of crashing on a map lookup.
	collection := models.Collection{
		{"values": []any{models.Record{"raw": "Nvidia"}, "plain"}},
		{"values": []any{models.Record{"raw": "Nvidia"}, models.Record{"raw": "IBM"}}},
		{"values": []any{[]any{"x", "y"}, []any{"x", "y"}, "plain"}},
	}

	extract := func(record models.Record) []any {
		values, _ := record["values"].([]any)

		return values
	}

	want := []any{
		models.Record{"raw": "Nvidia"},
		"plain",
		models.Record{"raw": "IBM"},
		[]any{"x", "y"},
	}
	assert.Equal(t, want, DedupeAccumulate(collection, extract))
}

func TestDedupeAccumulate_EmptyExtraction(t *testing.T) {
	collection := models.Collection{{"name": "no values"}}

	extract := func(record models.Record) []any { return nil }

	assert.Empty(t, DedupeAccumulate(collection, extract))
}
