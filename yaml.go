package cow

import "gopkg.in/yaml.v3"

// yamlCodec implements Codec for YAML.
type yamlCodec struct{}

// YAML returns a YAML codec.
func YAML() Codec {
	return yamlCodec{}
}

// ContentType returns the MIME type for YAML.
func (yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML.
func (yamlCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Unmarshal decodes YAML data into v.
func (yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// MarshalYAML encodes the projected view.
func (c Cow[O, B]) MarshalYAML() (any, error) {
	return c.View(), nil
}

// UnmarshalYAML decodes into the Owned variant, following the same
// in-place contract as UnmarshalJSON.
func (c *Cow[O, B]) UnmarshalYAML(value *yaml.Node) error {
	return decodeInto(c, func(v any) error { return value.Decode(v) })
}
