package models

// Canonical projection field sets for the fleet scenario. Each map declares
// the exact output key set together with the default substituted when the
// source record lacks the field. Sequence-valued defaults mark fields that
// the aggregator populates later.

// PersonDefaults returns the field set for a projected person. The homeworld
// field holds the raw reference until the resolver replaces it.
func PersonDefaults() Record {
	return Record{
		"name":       "",
		"height":     "",
		"mass":       "",
		"birth_year": "",
		"eye_color":  "",
		"homeworld":  "",
		"dialogue":   []any{},
	}
}

// StarshipDefaults returns the field set for a projected starship.
func StarshipDefaults() Record {
	return Record{
		"name":                   "",
		"model":                  "",
		"passengers":             []any{},
		"max_atmosphering_speed": "",
		"length":                 "",
	}
}

// FilmDefaults returns the field set for a projected film.
func FilmDefaults() Record {
	return Record{
		"title":         "",
		"episode_id":    "",
		"opening_crawl": "",
		"director":      "",
		"release_date":  "",
		"starships":     []any{},
	}
}

// PlanetDefaults returns the thinned field set a resolved homeworld reduces to.
func PlanetDefaults() Record {
	return Record{
		"name":       "",
		"diameter":   "",
		"climate":    "",
		"terrain":    "",
		"population": "",
	}
}
