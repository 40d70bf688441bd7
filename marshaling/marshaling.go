// Package marshaling provides a uniform thread-safe interface to the
// encoding/decoding formats used for storing flash payloads, following the
// JSON marshal/unmarshal function interface.
package marshaling

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

type Marshaler interface {
	Marshal(value any) ([]byte, error)
	Unmarshal(marshaled []byte, result any) error
}

// Json

type JSON struct{}

func (m JSON) Marshal(value any) ([]byte, error) {
	return json.Marshal(value)
}

func (m JSON) Unmarshal(marshaled []byte, result any) error {
	return json.Unmarshal(marshaled, result)
}

// MessagePack

type MessagePack struct{}

func (m MessagePack) Marshal(value any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(value); err != nil {
		return nil, errors.Wrapf(err, "couldn't msgpack-encode value %#v", value)
	}
	return buf.Bytes(), nil
}

func (m MessagePack) Unmarshal(marshaled []byte, result any) error {
	buf := bytes.NewBuffer(marshaled)
	dec := msgpack.NewDecoder(buf)
	dec.SetCustomStructTag("json")
	if err := dec.Decode(result); err != nil {
		return errors.Wrapf(err, "couldn't msgpack-decode type %T from bytes %+v", result, marshaled)
	}
	return nil
}
