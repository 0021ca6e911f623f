package normalizer

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"recpipe/internal/models"
)

// Predicate decides whether a record belongs in a filtered collection.
// Predicates evaluated against missing fields report false.
type Predicate func(models.Record) bool

// FilterFields returns a new collection where every record drops the named
// keys and keeps all others, values unchanged. An empty exclusion list
// yields records equal to the input.
func FilterFields(collection models.Collection, excludedKeys []string) models.Collection {
	filtered := make(models.Collection, 0, len(collection))

	for _, record := range collection {
		out := make(models.Record, len(record))

		for key, value := range record {
			if !slices.Contains(excludedKeys, key) {
				out[key] = value
			}
		}

		filtered = append(filtered, out)
	}

	return filtered
}

// FilterPredicate keeps only the records satisfying the predicate.
func FilterPredicate(collection models.Collection, pred Predicate) models.Collection {
	var kept models.Collection

	for _, record := range collection {
		if pred(record) {
			kept = append(kept, record)
		}
	}

	return kept
}

// HasNonEmptyList builds a predicate that holds when the named field is a
// non-empty sequence.
func HasNonEmptyList(field string) Predicate {
	return func(record models.Record) bool {
		items, ok := record[field].([]any)

		return ok && len(items) > 0
	}
}

// KeywordMatch builds a predicate over a list-valued field of sub-records. It
// holds when any item has nameKey equal to nameValue and the wanted substring
// present in its valueKey.
func KeywordMatch(listField, nameKey, nameValue, valueKey, substring string) Predicate {
	return func(record models.Record) bool {
		items, ok := record[listField].([]any)
		if !ok {
			return false
		}

		for _, item := range items {
			sub, ok := item.(models.Record)
			if !ok {
				continue
			}

			if models.GetString(sub, nameKey, "") != nameValue {
				continue
			}

			if strings.Contains(models.GetString(sub, valueKey, ""), substring) {
				return true
			}
		}

		return false
	}
}

// ExtractField projects a single dotted field path across the collection into
// a flat sequence. A record missing the path contributes nothing.
func ExtractField(collection models.Collection, path string) []any {
	var values []any

	for _, record := range collection {
		if value, ok := models.GetPath(record, path); ok {
			values = append(values, value)
		}
	}

	return values
}

// ExtractPairs projects two dotted field paths across the collection into a
// sequence of pairs. Records missing either path contribute nothing.
func ExtractPairs(collection models.Collection, pathA, pathB string) []models.Pair {
	var pairs []models.Pair

	for _, record := range collection {
		a, okA := models.GetPath(record, pathA)
		b, okB := models.GetPath(record, pathB)

		if okA && okB {
			pairs = append(pairs, models.Pair{a, b})
		}
	}

	return pairs
}

// ConvertDateField parses the named string field of every record into a
// time.Time in place. A record without the field is left untouched; a value
// that fails to parse aborts the conversion.
func ConvertDateField(collection models.Collection, field, layout string) error {
	for i, record := range collection {
		raw, ok := record[field]
		if !ok {
			continue
		}

		value, ok := raw.(string)
		if !ok {
			// Already converted on a previous pass.
			continue
		}

		parsed, err := time.Parse(layout, value)
		if err != nil {
			return fmt.Errorf("failed to parse %s of record %d: %w", field, i, err)
		}

		record[field] = parsed
	}

	return nil
}

// KeywordValues collects valueKey from every item of the record's list-valued
// field whose nameKey equals nameValue. Used to pull organization names out
// of an article's keyword list; repeats are kept.
func KeywordValues(record models.Record, listField, nameKey, nameValue, valueKey string) []any {
	items, _ := record[listField].([]any)

	var values []any

	for _, item := range items {
		sub, ok := item.(models.Record)
		if !ok {
			continue
		}

		if models.GetString(sub, nameKey, "") == nameValue {
			values = append(values, sub[valueKey])
		}
	}

	return values
}

// FormatAuthorName renders a byline person as "Last, First" with both names
// title-cased. A fresh caser per call since cases.Caser carries state.
func FormatAuthorName(person models.Record) string {
	caser := cases.Title(language.English)
	last := caser.String(models.GetString(person, "lastname", ""))
	first := caser.String(models.GetString(person, "firstname", ""))

	return fmt.Sprintf("%s, %s", last, first)
}

// AuthorNames collects the formatted author names from the record's byline
// person list. A record without a byline contributes nothing.
func AuthorNames(record models.Record, bylineField, personField string) []any {
	byline, ok := record[bylineField].(models.Record)
	if !ok {
		return nil
	}

	people, _ := byline[personField].([]any)

	var names []any

	for _, item := range people {
		person, ok := item.(models.Record)
		if !ok {
			continue
		}

		names = append(names, FormatAuthorName(person))
	}

	return names
}
