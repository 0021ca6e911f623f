package normalizer

import (
	"time"

	"recpipe/internal/models"
)

// LabelRule maps a record onto one of exactly two labels.
type LabelRule func(models.Record) string

// Classify produces a parallel sequence of (identifier, label) pairs in
// input order. The identifier is read from the dotted idPath; a record
// missing the path gets a nil identifier rather than being dropped, so the
// output stays parallel to the input.
func Classify(collection models.Collection, idPath string, rule LabelRule) []models.Pair {
	labeled := make([]models.Pair, 0, len(collection))

	for _, record := range collection {
		id, _ := models.GetPath(record, idPath)
		labeled = append(labeled, models.Pair{id, rule(record)})
	}

	return labeled
}

// YearAtLeast builds a two-valued rule over a date field previously converted
// by ConvertDateField: records whose year reaches the threshold get the
// atOrAbove label, everything else gets the below label.
func YearAtLeast(field string, threshold int, atOrAbove, below string) LabelRule {
	return func(record models.Record) string {
		date, ok := record[field].(time.Time)
		if ok && date.Year() >= threshold {
			return atOrAbove
		}

		return below
	}
}
