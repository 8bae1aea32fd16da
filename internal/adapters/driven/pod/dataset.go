package pod

import (
	"encoding/json"
	"fmt"

	"github.com/lomap-labs/lomap-cli/internal/core/domain"
)

// Wire representation of a container. The record identifier is the
// object key; the record body carries the type tag and the attribute
// set.
type wireRecord struct {
	Type       string         `json:"type"`
	Attributes map[string]any `json:"attributes"`
}

type wireContainer struct {
	Records map[string]wireRecord `json:"records"`
}

// MarshalContainer encodes a container into its wire form.
func MarshalContainer(c *domain.Container) ([]byte, error) {
	wire := wireContainer{Records: make(map[string]wireRecord, len(c.Records))}
	for id, rec := range c.Records {
		wire.Records[id] = wireRecord{
			Type:       string(rec.Type),
			Attributes: rec.Attributes,
		}
	}
	data, err := json.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEncode, err)
	}
	return data, nil
}

// UnmarshalContainer decodes a container from its wire form.
// Bodies that are not valid container documents fail with
// domain.ErrSchemaMismatch.
func UnmarshalContainer(data []byte) (*domain.Container, error) {
	var wire wireContainer
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSchemaMismatch, err)
	}
	c := domain.NewContainer()
	for id, rec := range wire.Records {
		attrs := rec.Attributes
		if attrs == nil {
			attrs = make(map[string]any)
		}
		c.Set(domain.Record{
			ID:         id,
			Type:       domain.RecordType(rec.Type),
			Attributes: attrs,
		})
	}
	return c, nil
}
