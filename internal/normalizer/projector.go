// Package normalizer transforms fetched records: field projection with
// defaulting, key and row filtering, field extraction, date conversion and
// two-valued classification.
package normalizer

import (
	"errors"
	"fmt"
	"strings"

	"recpipe/internal/fetcher"
	"recpipe/internal/models"
)

// ErrFieldResolution is returned when a reference field cannot be resolved
// because the nested fetch fails.
var ErrFieldResolution = errors.New("failed to resolve reference field")

// isLocator reports whether a reference value is a direct resource locator.
// Locators carry a URL scheme; plain names never do.
func isLocator(identifier string) bool {
	return strings.Contains(identifier, "://")
}

// Resolver turns a reference field value into a fully fetched, thinned
// record. The returned record is flat; it never triggers further resolution.
type Resolver func(identifier string) (models.Record, error)

// Project reduces a record to exactly the declared field set. Fields present
// in the source are copied verbatim; absent fields take the declared default.
func Project(record models.Record, defaults models.Record) models.Record {
	out := make(models.Record, len(defaults))
	for name, def := range defaults {
		out[name] = models.Get(record, name, def)
	}

	return out
}

// ProjectWith projects like Project, additionally resolving the designated
// reference field through the supplied resolver. The reference field's raw
// source value is handed to the resolver; its resolved record replaces it in
// the output. A record without the field keeps the declared default and the
// resolver never runs, matching how every other absent field behaves.
func ProjectWith(record models.Record, defaults models.Record, refField string, resolve Resolver) (models.Record, error) {
	out := Project(record, defaults)

	if _, declared := defaults[refField]; !declared {
		return out, nil
	}

	raw, present := record[refField]
	if !present {
		return out, nil
	}

	identifier, _ := raw.(string)

	resolved, err := resolve(identifier)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFieldResolution, refField, err)
	}

	out[refField] = resolved

	return out, nil
}

// PlanetResolver builds a resolver for homeworld references. An identifier
// carrying a URL scheme is fetched directly; anything else is treated as a
// planet name and searched against the supplied endpoint. The
// resolved planet is thinned to the canonical planet field set.
func PlanetResolver(client *fetcher.Client, searchEndpoint string) Resolver {
	return func(identifier string) (models.Record, error) {
		var (
			planet models.Record
			err    error
		)

		if isLocator(identifier) {
			planet, err = client.Resource(identifier)
		} else {
			planet, err = client.SearchOne(searchEndpoint, identifier)
		}

		if err != nil {
			return nil, err
		}

		return Project(planet, models.PlanetDefaults()), nil
	}
}
