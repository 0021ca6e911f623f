package fetcher

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"recpipe/internal/models"
)

// ReadJSON decodes a local JSON document and returns whatever top-level
// structure it contains (object or list).
func ReadJSON(filepath string) (any, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode JSON from %s: %w", filepath, err)
	}

	return doc, nil
}

// ReadJSONRecords decodes a local JSON document expected to hold a list of
// records.
func ReadJSONRecords(filepath string) (models.Collection, error) {
	doc, err := ReadJSON(filepath)
	if err != nil {
		return nil, err
	}

	raw, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("failed to decode JSON from %s: top-level value is %T, not a list", filepath, doc)
	}

	records := make(models.Collection, 0, len(raw))

	for _, item := range raw {
		record, ok := item.(models.Record)
		if !ok {
			return nil, fmt.Errorf("failed to decode JSON from %s: list item is %T, not an object", filepath, item)
		}

		records = append(records, record)
	}

	return records, nil
}

// ReadCSV reads a delimited file into one record per row, with field names
// taken from the header row. A UTF-8 byte-order mark ahead of the header is
// stripped, since spreadsheet exports commonly carry one.
func ReadCSV(filepath string) (models.Collection, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	decoder := unicode.UTF8BOM.NewDecoder()
	reader := csv.NewReader(transform.NewReader(file, decoder))

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header from %s: %w", filepath, err)
	}

	var records models.Collection

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row from %s: %w", filepath, err)
		}

		record := make(models.Record, len(header))
		for i, name := range header {
			if i < len(row) {
				record[name] = row[i]
			}
		}

		records = append(records, record)
	}

	return records, nil
}
