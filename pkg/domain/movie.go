package domain

import "time"

// Impression represents a single listing entry as scraped from the source page's
// analytics payload. It lives for one scrape cycle only and is never persisted
// directly; new impressions are mapped into Movie records on save.
type Impression struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Variant  string `json:"variant"`
	Category string `json:"category"`
	Position int    `json:"position"`
	Tag      string `json:"dimension13"`
}

// Movie represents a persisted listing. Records are append-only history: once
// saved a movie is never updated or deleted by the ingestion pipeline.
type Movie struct {
	ID        int64     `json:"id"`
	MovieID   string    `json:"movie_id"` // stable identifier from the source, unique in the store
	Name      string    `json:"name"`
	Variant   string    `json:"variant"`
	Category  string    `json:"category"`
	Position  int       `json:"position"`
	Tag       string    `json:"tag"`
	CreatedAt time.Time `json:"created_at"`
}

// MovieFromImpression maps a scraped impression into a movie record ready for
// persistence. CreatedAt is assigned by the store at insert time.
func MovieFromImpression(imp Impression) Movie {
	return Movie{
		MovieID:  imp.ID,
		Name:     imp.Name,
		Variant:  imp.Variant,
		Category: imp.Category,
		Position: imp.Position,
		Tag:      imp.Tag,
	}
}
