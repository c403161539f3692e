package catalog

import "encoding/json"

// rawFallbackKey is the attribute name under which an undecodable
// specification blob is preserved. The collaborator labels free-form
// spec text this way, so display layers render it without translation.
const rawFallbackKey = "规格"

// Specifications is a closed sum over the two shapes a specification blob
// can take: a structured attribute mapping, or a raw string preserved as a
// single fallback attribute. Consumers must handle both; decoding never
// fails a containing record.
type Specifications struct {
	structured map[string]any
	raw        string
	fallback   bool
}

// NewStructuredSpecs builds Specifications from an attribute mapping.
func NewStructuredSpecs(attrs map[string]any) Specifications {
	if attrs == nil {
		attrs = map[string]any{}
	}
	return Specifications{structured: attrs}
}

// NewRawSpecs builds Specifications that wrap an undecodable blob.
func NewRawSpecs(raw string) Specifications {
	return Specifications{raw: raw, fallback: true}
}

// DecodeSpecs interprets a raw specification value from the collaborator:
// an already-structured mapping is kept as-is; a string is attempted as
// JSON; anything undecodable is wrapped as the single fallback attribute.
func DecodeSpecs(value any) Specifications {
	switch v := value.(type) {
	case nil:
		return NewStructuredSpecs(nil)
	case map[string]any:
		return NewStructuredSpecs(v)
	case string:
		if v == "" {
			return NewStructuredSpecs(nil)
		}
		var attrs map[string]any
		if err := json.Unmarshal([]byte(v), &attrs); err != nil {
			return NewRawSpecs(v)
		}
		return NewStructuredSpecs(attrs)
	default:
		return NewStructuredSpecs(nil)
	}
}

// IsFallback reports whether the blob could not be decoded.
func (s Specifications) IsFallback() bool {
	return s.fallback
}

// Raw returns the original undecodable blob, or "" for structured specs.
func (s Specifications) Raw() string {
	return s.raw
}

// Attributes returns the attribute mapping. Fallback specs surface as a
// single attribute keyed by the collaborator's free-form label.
func (s Specifications) Attributes() map[string]any {
	if s.fallback {
		return map[string]any{rawFallbackKey: s.raw}
	}
	return s.structured
}

// Len returns the number of display attributes.
func (s Specifications) Len() int {
	return len(s.Attributes())
}

// MarshalJSON serializes the display attributes.
func (s Specifications) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Attributes())
}

// UnmarshalJSON accepts either a mapping or a quoted blob.
func (s *Specifications) UnmarshalJSON(data []byte) error {
	var attrs map[string]any
	if err := json.Unmarshal(data, &attrs); err == nil {
		*s = NewStructuredSpecs(attrs)
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*s = DecodeSpecs(raw)
		return nil
	}
	*s = NewStructuredSpecs(nil)
	return nil
}
