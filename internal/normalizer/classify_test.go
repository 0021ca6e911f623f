package normalizer

import (
	"testing"
	"time"

	"recpipe/internal/models"
)

func datedArticles(t *testing.T, years []int) models.Collection {
	t.Helper()

	collection := make(models.Collection, 0, len(years))

	for i, year := range years {
		collection = append(collection, models.Record{
			"headline": models.Record{"main": string(rune('A' + i))},
			"pub_date": time.Date(year, time.June, 1, 12, 0, 0, 0, time.UTC),
		})
	}

	return collection
}

func TestClassify_ThresholdYear(t *testing.T) {
	articles := datedArticles(t, []int{2021, 2022, 2023})

	rule := YearAtLeast("pub_date", 2022, "Active", "Archived")
	labeled := Classify(articles, "headline.main", rule)

	if len(labeled) != 3 {
		t.Fatalf("labeled = %d, want 3", len(labeled))
	}

	wantLabels := []string{"Archived", "Active", "Active"}
	for i, want := range wantLabels {
		if labeled[i][1] != want {
			t.Errorf("labeled[%d] = %v, want %s", i, labeled[i][1], want)
		}
	}

	// Identifiers stay parallel to input order.
	if labeled[0][0] != "A" || labeled[2][0] != "C" {
		t.Errorf("identifiers out of order: %v", labeled)
	}
}

func TestClassify_MissingIdentifier(t *testing.T) {
	articles := models.Collection{{"pub_date": time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)}}

	labeled := Classify(articles, "headline.main", YearAtLeast("pub_date", 2022, "Active", "Archived"))

	if len(labeled) != 1 {
		t.Fatalf("labeled = %d, want 1", len(labeled))
	}

	if labeled[0][0] != nil {
		t.Errorf("identifier = %v, want nil", labeled[0][0])
	}

	if labeled[0][1] != "Active" {
		t.Errorf("label = %v, want Active", labeled[0][1])
	}
}

func TestYearAtLeast_UnconvertedFieldIsBelow(t *testing.T) {
	rule := YearAtLeast("pub_date", 2022, "Active", "Archived")

	// A record whose date was never converted cannot be active.
	if got := rule(models.Record{"pub_date": "2023-03-14T09:00:18-05:00"}); got != "Archived" {
		t.Errorf("rule = %s, want Archived", got)
	}

	if got := rule(models.Record{}); got != "Archived" {
		t.Errorf("rule on empty record = %s, want Archived", got)
	}
}
