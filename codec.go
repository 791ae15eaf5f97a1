package cow

import (
	"context"
	"time"
)

// Codec provides content-type aware marshaling for the serialization
// bridge. JSON, YAML, and Msgpack return ready-made implementations.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// Marshal serializes the container's projected view through codec.
//
// The wire form is identical to serializing the bare view: no envelope,
// no variant tag. Two containers with equal views produce identical
// bytes regardless of variant.
func Marshal[O Viewer[B], B any](c Cow[O, B], codec Codec) ([]byte, error) {
	start := time.Now()
	data, err := codec.Marshal(c.View())
	emitEncode(context.Background(), codec.ContentType(), typeName[O](), len(data), time.Since(start), err)
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}
	return data, nil
}

// Unmarshal deserializes data into a fresh container. The result is
// always the Owned variant: a wire format carries no live data to
// borrow from.
//
// On failure the error wraps ErrUnmarshal along with the codec's own
// error, and no container is returned.
func Unmarshal[O Viewer[B], B any](data []byte, codec Codec) (Cow[O, B], error) {
	var c Cow[O, B]
	start := time.Now()
	err := codec.Unmarshal(data, &c.owned)
	emitDecode(context.Background(), codec.ContentType(), typeName[O](), len(data), time.Since(start), err)
	if err != nil {
		return Cow[O, B]{}, newCodecError(ErrUnmarshal, err)
	}
	return c, nil
}

// Decode deserializes data into an existing container in place.
//
// If the container is already Owned the codec decodes directly into the
// existing payload, allowing buffer reuse. If it is Borrowed, a fresh
// payload is decoded first and the view is discarded only on success:
// a failed decode leaves a Borrowed container unchanged.
func Decode[O Viewer[B], B any](c *Cow[O, B], data []byte, codec Codec) error {
	start := time.Now()
	err := decodeInto(c, func(v any) error { return codec.Unmarshal(data, v) })
	emitDecode(context.Background(), codec.ContentType(), typeName[O](), len(data), time.Since(start), err)
	if err != nil {
		return newCodecError(ErrUnmarshal, err)
	}
	return nil
}

// decodeInto runs a decode function against the container's owned
// payload, applying the in-place deserialization contract shared by the
// Codec bridge and the marshaler hooks.
func decodeInto[O Viewer[B], B any](c *Cow[O, B], decode func(v any) error) error {
	if !c.borrowed {
		return decode(&c.owned)
	}
	var owned O
	if err := decode(&owned); err != nil {
		return err
	}
	var empty B
	c.owned, c.view, c.borrowed = owned, empty, false
	return nil
}
