// Package aggregator combines per-record facts into mutated records: bucket
// accumulation, flag-based partitioning, sub-resource nesting, lookup-table
// merging and ordered deduplication.
package aggregator

import "recpipe/internal/models"

// BucketInsert appends an item to the named bucket of the target record,
// creating the bucket with a single-element sequence on first insertion.
func BucketInsert(target models.Record, bucket string, item any) {
	existing, ok := target[bucket].([]any)
	if !ok {
		target[bucket] = []any{item}

		return
	}

	target[bucket] = append(existing, item)
}

// Flagged pairs an item with the boolean deciding its destination bucket.
type Flagged struct {
	Item models.Record
	Flag bool
}

// AssignByFlag partitions the items into two named buckets on the target
// record. Membership is decided per item by its paired flag, never by the
// item's own fields; every item lands in exactly one bucket.
func AssignByFlag(target models.Record, items []Flagged, trueBucket, falseBucket string) {
	for _, flagged := range items {
		if flagged.Flag {
			BucketInsert(target, trueBucket, flagged.Item)
		} else {
			BucketInsert(target, falseBucket, flagged.Item)
		}
	}
}

// AttachSubResource nests a child record under parent[key][innerKey],
// creating the sub-structure with a single-element inner list on first use
// and appending on subsequent calls.
func AttachSubResource(parent models.Record, key, innerKey string, child models.Record) {
	sub, ok := parent[key].(models.Record)
	if !ok {
		parent[key] = models.Record{innerKey: []any{child}}

		return
	}

	BucketInsert(sub, innerKey, child)
}
