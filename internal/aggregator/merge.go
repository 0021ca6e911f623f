package aggregator

import (
	"reflect"

	"recpipe/internal/models"
)

// MergeMatching scans the lookup table and, for the entry whose key equals
// the record's identity field, extends the record's merge field with the
// entry's values (append-all, not replace). Table sizes are small, so a
// linear scan is fine; at most one entry ever matches a given record.
func MergeMatching(record models.Record, table map[string][]string, identityField, mergeField string) {
	identity := models.GetString(record, identityField, "")

	for key, values := range table {
		if identity != key {
			continue
		}

		merged, _ := record[mergeField].([]any)
		for _, value := range values {
			merged = append(merged, value)
		}

		record[mergeField] = merged
	}
}

// Extractor derives zero or more values from a record for accumulation.
type Extractor func(models.Record) []any

// DedupeAccumulate runs the extractor over every record and accumulates the
// derived values into one sequence, preserving first-seen order and skipping
// nil values and exact duplicates. Comparable values dedupe through a set;
// records and sequences fall back to a deep-equality scan, since hashing them
// would panic.
func DedupeAccumulate(collection models.Collection, extract Extractor) []any {
	seen := make(map[any]bool)

	var (
		accumulated  []any
		uncomparable []any
	)

	for _, record := range collection {
		for _, value := range extract(record) {
			if value == nil {
				continue
			}

			if !reflect.TypeOf(value).Comparable() {
				if deepContains(uncomparable, value) {
					continue
				}

				uncomparable = append(uncomparable, value)
				accumulated = append(accumulated, value)

				continue
			}

			if seen[value] {
				continue
			}

			seen[value] = true

			accumulated = append(accumulated, value)
		}
	}

	return accumulated
}

func deepContains(values []any, value any) bool {
	for _, existing := range values {
		if reflect.DeepEqual(existing, value) {
			return true
		}
	}

	return false
}
