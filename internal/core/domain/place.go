package domain

import "time"

// Place is the full detail record for a point of interest. Its identity
// is a container-relative URL, not a local key.
//
// Places are fetched lazily on first detail view and re-fetched on every
// navigation: they are never cached client-side. Mutation happens only
// through append-only sub-writes (one comment, rating or photo at a
// time); a Place is never updated in place.
type Place struct {
	// URL is the locator of the place's container.
	URL string

	// Title is the display name.
	Title string

	// Lat and Lng are the place coordinates.
	Lat float64
	Lng float64

	// Description is the free-form text shown in the overview.
	Description string

	Photos   []Photo
	Ratings  []Rating
	Comments []Comment
}

// AverageRating returns the mean score across all ratings, or 0 when the
// place has none.
func (p *Place) AverageRating() float64 {
	if len(p.Ratings) == 0 {
		return 0
	}
	var sum float64
	for _, r := range p.Ratings {
		sum += float64(r.Score)
	}
	return sum / float64(len(p.Ratings))
}

// Comment is an append-only value object: a piece of text attributed to
// an author. Comments are never updated or deleted.
type Comment struct {
	// ID is the record identifier, minted at persistence time.
	ID string

	// Author is the WebID of the commenting user.
	Author string

	// Text is the comment body. Must be non-empty.
	Text string

	// CreatedAt is when the comment was written.
	CreatedAt time.Time
}

// Rating score bounds.
const (
	MinScore = 0
	MaxScore = 5
)

// Rating is an append-only value object carrying a bounded numeric score.
type Rating struct {
	// ID is the record identifier, minted at persistence time.
	ID string

	// Author is the WebID of the rating user.
	Author string

	// Score is the rating value, within [MinScore, MaxScore].
	Score int

	// CreatedAt is when the rating was given.
	CreatedAt time.Time
}

// Photo is a reference to an uploaded photo. File transfer mechanics are
// outside the core; only the name and resolved URL are recorded.
type Photo struct {
	// ID is the record identifier, minted at persistence time.
	ID string

	// Author is the WebID of the uploading user.
	Author string

	// Name is the original file name.
	Name string

	// URL is where the photo content lives.
	URL string
}
