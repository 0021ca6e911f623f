package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recpipe/internal/models"
)

func TestBucketInsert_CreatesThenAppends(t *testing.T) {
	starship := models.Record{"name": "CR90 corvette"}

	BucketInsert(starship, "passengers", "p1")

	bucket, ok := starship["passengers"].([]any)
	require.True(t, ok, "first insert should create the bucket")
	assert.Equal(t, []any{"p1"}, bucket)

	BucketInsert(starship, "passengers", "p2")
	BucketInsert(starship, "passengers", "p3")

	assert.Equal(t, []any{"p1", "p2", "p3"}, starship["passengers"])
}

func TestBucketInsert_LengthMatchesCallCount(t *testing.T) {
	target := models.Record{}

	const n = 10
	for i := 0; i < n; i++ {
		BucketInsert(target, "items", i)
	}

	bucket := target["items"].([]any)
	require.Len(t, bucket, n)

	for i := 0; i < n; i++ {
		assert.Equal(t, i, bucket[i], "bucket preserves call order")
	}
}

func TestAssignByFlag_PartitionsCompletely(t *testing.T) {
	starship := models.Record{"name": "CR90 corvette", "model": "corvette"}

	p1 := models.Record{"name": "R2-D2"}
	p2 := models.Record{"name": "Darth Vader"}

	AssignByFlag(starship, []Flagged{
		{Item: p1, Flag: false},
		{Item: p2, Flag: true},
	}, "intruder", "passengers")

	passengers := starship["passengers"].([]any)
	intruders := starship["intruder"].([]any)

	require.Len(t, passengers, 1)
	require.Len(t, intruders, 1)
	assert.Equal(t, p1, passengers[0])
	assert.Equal(t, p2, intruders[0])

	// Existing keys are untouched.
	assert.Equal(t, "CR90 corvette", starship["name"])
	assert.Equal(t, "corvette", starship["model"])
}

func TestAssignByFlag_SizesSumToInput(t *testing.T) {
	target := models.Record{}

	items := []Flagged{
		{Item: models.Record{"id": 1}, Flag: true},
		{Item: models.Record{"id": 2}, Flag: false},
		{Item: models.Record{"id": 3}, Flag: true},
		{Item: models.Record{"id": 4}, Flag: true},
		{Item: models.Record{"id": 5}, Flag: false},
	}

	AssignByFlag(target, items, "intruder", "passengers")

	intruders := target["intruder"].([]any)
	passengers := target["passengers"].([]any)

	assert.Len(t, intruders, 3)
	assert.Len(t, passengers, 2)
	assert.Equal(t, len(items), len(intruders)+len(passengers))
}

func TestAttachSubResource(t *testing.T) {
	attacker := models.Record{"name": "Star Destroyer"}
	prey := models.Record{"name": "CR90 corvette"}

	AttachSubResource(attacker, "primary_docking_bay", "docked", prey)

	bay, ok := attacker["primary_docking_bay"].(models.Record)
	require.True(t, ok, "first attach should create the sub-structure")
	assert.Equal(t, []any{prey}, bay["docked"])

	second := models.Record{"name": "Millennium Falcon"}
	AttachSubResource(attacker, "primary_docking_bay", "docked", second)

	bay = attacker["primary_docking_bay"].(models.Record)
	assert.Equal(t, []any{prey, second}, bay["docked"])
}
