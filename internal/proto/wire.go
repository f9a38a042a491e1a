package proto

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// wireMessage is implemented by every message of the user directory
// contract. The encoding follows the protobuf binary format, so peers using
// protoc-generated stubs for userdirectory.proto interoperate unchanged.
type wireMessage interface {
	appendWire(b []byte) []byte
	unmarshalWire(b []byte) error
}

// fieldFunc consumes the value of one field and returns the number of bytes
// read. Unknown fields are handed to skipField.
type fieldFunc func(num protowire.Number, typ protowire.Type, b []byte) (int, error)

func walkFields(b []byte, fn fieldFunc) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		n, err := fn(num, typ, b)
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

func skipField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	n := protowire.ConsumeFieldValue(num, typ, b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	return n, nil
}

func consumeVarint(num protowire.Number, typ protowire.Type, b []byte, set func(uint64)) (int, error) {
	if typ != protowire.VarintType {
		return skipField(num, typ, b)
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	set(v)
	return n, nil
}

func consumeUint64(num protowire.Number, typ protowire.Type, b []byte, dst *uint64) (int, error) {
	return consumeVarint(num, typ, b, func(v uint64) { *dst = v })
}

func consumeInt32(num protowire.Number, typ protowire.Type, b []byte, dst *int32) (int, error) {
	return consumeVarint(num, typ, b, func(v uint64) { *dst = int32(v) })
}

func consumeOptionalInt32(num protowire.Number, typ protowire.Type, b []byte, dst **int32) (int, error) {
	return consumeVarint(num, typ, b, func(v uint64) {
		x := int32(v)
		*dst = &x
	})
}

func consumeBool(num protowire.Number, typ protowire.Type, b []byte, dst *bool) (int, error) {
	return consumeVarint(num, typ, b, func(v uint64) { *dst = protowire.DecodeBool(v) })
}

func consumeStatus(num protowire.Number, typ protowire.Type, b []byte, dst *UserStatus) (int, error) {
	return consumeVarint(num, typ, b, func(v uint64) { *dst = UserStatus(int32(v)) })
}

func consumeString(num protowire.Number, typ protowire.Type, b []byte, dst *string) (int, error) {
	if typ != protowire.BytesType {
		return skipField(num, typ, b)
	}
	v, n := protowire.ConsumeString(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	*dst = v
	return n, nil
}

func consumeMessage(num protowire.Number, typ protowire.Type, b []byte, m wireMessage) (int, error) {
	if typ != protowire.BytesType {
		return skipField(num, typ, b)
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	if err := m.unmarshalWire(v); err != nil {
		return 0, err
	}
	return n, nil
}

// Scalars at their zero value are omitted, as proto3 requires for fields
// without explicit presence.

func appendUint64(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendInt32(b []byte, num protowire.Number, v int32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(int64(v)))
}

func appendOptionalInt32(b []byte, num protowire.Number, v *int32) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(int64(*v)))
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(v))
}

func appendStatus(b []byte, num protowire.Number, v UserStatus) []byte {
	return appendInt32(b, num, int32(v))
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendMessage(b []byte, num protowire.Number, m wireMessage) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m.appendWire(nil))
}
