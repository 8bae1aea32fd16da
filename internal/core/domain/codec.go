package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Attribute names used by the record representation. The shape mirrors
// the container's conceptual schema: a name plus numeric coordinates for
// placemarks, and the analogous fields for the other entity kinds.
const (
	attrName        = "name"
	attrLatitude    = "latitude"
	attrLongitude   = "longitude"
	attrCategory    = "category"
	attrPlaceURL    = "placeUrl"
	attrDescription = "description"
	attrAuthor      = "author"
	attrText        = "text"
	attrScore       = "score"
	attrCreatedAt   = "createdAt"
	attrURL         = "url"
)

// EncodePlacemark converts a placemark into its record representation.
// Every call mints a fresh identifier: re-encoding logically identical
// data produces a distinct, additional record, never a replacement.
// Malformed entities fail with ErrEncode before any network activity.
func EncodePlacemark(p Placemark) (Record, error) {
	if p.Lat < MinLatitude || p.Lat > MaxLatitude ||
		p.Lng < MinLongitude || p.Lng > MaxLongitude {
		return Record{}, fmt.Errorf("%w: placemark coordinates out of range", ErrEncode)
	}
	rec := Record{
		ID:   uuid.NewString(),
		Type: RecordPlacemark,
		Attributes: map[string]any{
			attrName:      p.Title,
			attrLatitude:  p.Lat,
			attrLongitude: p.Lng,
		},
	}
	if p.Category != "" {
		rec.Attributes[attrCategory] = p.Category
	}
	if p.PlaceURL != "" {
		rec.Attributes[attrPlaceURL] = p.PlaceURL
	}
	return rec, nil
}

// DecodePlacemark converts a record back into a placemark. The record's
// key becomes the placemark identity.
func DecodePlacemark(rec Record) (Placemark, error) {
	if rec.Type != RecordPlacemark {
		return Placemark{}, fmt.Errorf("%w: record type %q is not a placemark", ErrSchemaMismatch, rec.Type)
	}
	name, err := attrString(rec, attrName)
	if err != nil {
		return Placemark{}, err
	}
	lat, err := attrNumber(rec, attrLatitude)
	if err != nil {
		return Placemark{}, err
	}
	lng, err := attrNumber(rec, attrLongitude)
	if err != nil {
		return Placemark{}, err
	}
	return Placemark{
		ID:       rec.ID,
		Lat:      lat,
		Lng:      lng,
		Title:    name,
		Category: optString(rec, attrCategory),
		PlaceURL: optString(rec, attrPlaceURL),
	}, nil
}

// EncodePlace converts a place's descriptive fields into a record.
// Sub-entities (comments, ratings, photos) are encoded separately.
func EncodePlace(p Place) (Record, error) {
	if p.Lat < MinLatitude || p.Lat > MaxLatitude ||
		p.Lng < MinLongitude || p.Lng > MaxLongitude {
		return Record{}, fmt.Errorf("%w: place coordinates out of range", ErrEncode)
	}
	return Record{
		ID:   uuid.NewString(),
		Type: RecordPlace,
		Attributes: map[string]any{
			attrName:        p.Title,
			attrLatitude:    p.Lat,
			attrLongitude:   p.Lng,
			attrDescription: p.Description,
		},
	}, nil
}

// DecodePlace converts a descriptive place record back into a Place.
// The caller fills in URL and sub-entities.
func DecodePlace(rec Record) (Place, error) {
	if rec.Type != RecordPlace {
		return Place{}, fmt.Errorf("%w: record type %q is not a place", ErrSchemaMismatch, rec.Type)
	}
	name, err := attrString(rec, attrName)
	if err != nil {
		return Place{}, err
	}
	lat, err := attrNumber(rec, attrLatitude)
	if err != nil {
		return Place{}, err
	}
	lng, err := attrNumber(rec, attrLongitude)
	if err != nil {
		return Place{}, err
	}
	return Place{
		Title:       name,
		Lat:         lat,
		Lng:         lng,
		Description: optString(rec, attrDescription),
	}, nil
}

// EncodeComment converts a comment into a record. Empty or
// whitespace-only text fails with ErrEncode.
func EncodeComment(c Comment) (Record, error) {
	if strings.TrimSpace(c.Text) == "" {
		return Record{}, fmt.Errorf("%w: empty comment", ErrEncode)
	}
	createdAt := c.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	return Record{
		ID:   uuid.NewString(),
		Type: RecordComment,
		Attributes: map[string]any{
			attrAuthor:    c.Author,
			attrText:      c.Text,
			attrCreatedAt: createdAt.Format(time.RFC3339),
		},
	}, nil
}

// DecodeComment converts a comment record back into a Comment.
func DecodeComment(rec Record) (Comment, error) {
	if rec.Type != RecordComment {
		return Comment{}, fmt.Errorf("%w: record type %q is not a comment", ErrSchemaMismatch, rec.Type)
	}
	author, err := attrString(rec, attrAuthor)
	if err != nil {
		return Comment{}, err
	}
	text, err := attrString(rec, attrText)
	if err != nil {
		return Comment{}, err
	}
	createdAt, err := attrTime(rec, attrCreatedAt)
	if err != nil {
		return Comment{}, err
	}
	return Comment{ID: rec.ID, Author: author, Text: text, CreatedAt: createdAt}, nil
}

// EncodeRating converts a rating into a record. Scores outside the
// bounded range fail with ErrEncode.
func EncodeRating(r Rating) (Record, error) {
	if r.Score < MinScore || r.Score > MaxScore {
		return Record{}, fmt.Errorf("%w: score %d out of range", ErrEncode, r.Score)
	}
	createdAt := r.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	return Record{
		ID:   uuid.NewString(),
		Type: RecordRating,
		Attributes: map[string]any{
			attrAuthor:    r.Author,
			attrScore:     float64(r.Score),
			attrCreatedAt: createdAt.Format(time.RFC3339),
		},
	}, nil
}

// DecodeRating converts a rating record back into a Rating.
func DecodeRating(rec Record) (Rating, error) {
	if rec.Type != RecordRating {
		return Rating{}, fmt.Errorf("%w: record type %q is not a rating", ErrSchemaMismatch, rec.Type)
	}
	author, err := attrString(rec, attrAuthor)
	if err != nil {
		return Rating{}, err
	}
	score, err := attrNumber(rec, attrScore)
	if err != nil {
		return Rating{}, err
	}
	createdAt, err := attrTime(rec, attrCreatedAt)
	if err != nil {
		return Rating{}, err
	}
	return Rating{ID: rec.ID, Author: author, Score: int(score), CreatedAt: createdAt}, nil
}

// EncodePhoto converts a photo reference into a record.
func EncodePhoto(p Photo) (Record, error) {
	if p.Name == "" {
		return Record{}, fmt.Errorf("%w: photo without a name", ErrEncode)
	}
	return Record{
		ID:   uuid.NewString(),
		Type: RecordPhoto,
		Attributes: map[string]any{
			attrAuthor: p.Author,
			attrName:   p.Name,
			attrURL:    p.URL,
		},
	}, nil
}

// DecodePhoto converts a photo record back into a Photo.
func DecodePhoto(rec Record) (Photo, error) {
	if rec.Type != RecordPhoto {
		return Photo{}, fmt.Errorf("%w: record type %q is not a photo", ErrSchemaMismatch, rec.Type)
	}
	author, err := attrString(rec, attrAuthor)
	if err != nil {
		return Photo{}, err
	}
	name, err := attrString(rec, attrName)
	if err != nil {
		return Photo{}, err
	}
	url, err := attrString(rec, attrURL)
	if err != nil {
		return Photo{}, err
	}
	return Photo{ID: rec.ID, Author: author, Name: name, URL: url}, nil
}

// attrString reads a required string attribute.
func attrString(rec Record, key string) (string, error) {
	val, ok := rec.Attributes[key]
	if !ok {
		return "", fmt.Errorf("%w: missing attribute %q", ErrSchemaMismatch, key)
	}
	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%w: attribute %q is not a string", ErrSchemaMismatch, key)
	}
	return s, nil
}

// attrNumber reads a required numeric attribute. JSON numbers arrive as
// float64; integer values written by this process are accepted too.
func attrNumber(rec Record, key string) (float64, error) {
	val, ok := rec.Attributes[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing attribute %q", ErrSchemaMismatch, key)
	}
	switch n := val.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("%w: attribute %q is not a number", ErrSchemaMismatch, key)
	}
}

// attrTime reads a required RFC3339 timestamp attribute.
func attrTime(rec Record, key string) (time.Time, error) {
	s, err := attrString(rec, key)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: attribute %q is not a timestamp", ErrSchemaMismatch, key)
	}
	return t, nil
}

// optString reads an optional string attribute, returning "" when absent
// or of the wrong kind.
func optString(rec Record, key string) string {
	val, ok := rec.Attributes[key]
	if !ok {
		return ""
	}
	s, _ := val.(string)
	return s
}
