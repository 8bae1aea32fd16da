package domain

import "sort"

// RecordType identifies the kind of entity a record encodes.
type RecordType string

const (
	// RecordPlacemark is a map placemark record.
	RecordPlacemark RecordType = "placemark"
	// RecordPlace is the descriptive record of a place container.
	RecordPlace RecordType = "place"
	// RecordComment is a comment on a place.
	RecordComment RecordType = "comment"
	// RecordRating is a rating on a place.
	RecordRating RecordType = "rating"
	// RecordPhoto is a photo reference on a place.
	RecordPhoto RecordType = "photo"
)

// Record is one addressable entity inside a container, keyed by a
// freshly generated unique identifier. Attribute values are strings or
// numbers; numbers always decode as float64.
type Record struct {
	// ID is the record key inside its container. Minted at encode time,
	// never derived from content and never reused.
	ID string

	// Type is the entity kind this record encodes.
	Type RecordType

	// Attributes holds the named attribute values.
	Attributes map[string]any
}

// Container is the decoded form of a user-owned remote dataset: a set of
// records keyed by identifier. The container is fetched and replaced
// wholesale on every write; there is no partial-patch operation.
type Container struct {
	// Records maps record identifiers to records.
	Records map[string]Record
}

// NewContainer creates an empty container.
func NewContainer() *Container {
	return &Container{Records: make(map[string]Record)}
}

// Set adds or replaces a record under its identifier.
func (c *Container) Set(rec Record) {
	if c.Records == nil {
		c.Records = make(map[string]Record)
	}
	c.Records[rec.ID] = rec
}

// Len returns the number of records in the container.
func (c *Container) Len() int {
	return len(c.Records)
}

// ByType returns all records of the given type, ordered by identifier
// for deterministic iteration.
func (c *Container) ByType(t RecordType) []Record {
	var out []Record
	for _, rec := range c.Records {
		if rec.Type == t {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
