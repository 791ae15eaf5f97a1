package cow

import "github.com/vmihailenco/msgpack/v5"

// msgpackCodec implements Codec for MessagePack.
type msgpackCodec struct{}

// Msgpack returns a MessagePack codec.
func Msgpack() Codec {
	return msgpackCodec{}
}

// ContentType returns the MIME type for MessagePack.
func (msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack.
func (msgpackCodec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal decodes MessagePack data into v.
func (msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}

// EncodeMsgpack encodes the projected view.
func (c Cow[O, B]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(c.View())
}

// DecodeMsgpack decodes into the Owned variant, following the same
// in-place contract as UnmarshalJSON.
func (c *Cow[O, B]) DecodeMsgpack(dec *msgpack.Decoder) error {
	return decodeInto(c, func(v any) error { return dec.Decode(v) })
}
