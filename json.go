package cow

import "encoding/json"

// jsonCodec implements Codec for JSON.
type jsonCodec struct{}

// JSON returns a JSON codec.
func JSON() Codec {
	return jsonCodec{}
}

// ContentType returns the MIME type for JSON.
func (jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// MarshalJSON encodes the projected view, so containers embedded in
// larger values serialize transparently with no variant tag.
func (c Cow[O, B]) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.View())
}

// UnmarshalJSON decodes into the Owned variant. An Owned receiver
// decodes in place into its existing payload; a Borrowed receiver is
// overwritten only if the decode succeeds.
func (c *Cow[O, B]) UnmarshalJSON(data []byte) error {
	return decodeInto(c, func(v any) error { return json.Unmarshal(data, v) })
}
