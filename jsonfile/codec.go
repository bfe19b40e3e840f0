package jsonfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/medusaphp/filesystem/errors"
)

var objectType = reflect.TypeOf(Object{})

// Decode parses a JSON document whose top level is an object. Empty input
// and an empty array decode to an empty object.
func Decode(text string) (*Object, error) {
	if strings.TrimSpace(text) == "" {
		return NewObject(), nil
	}

	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeDecodeFailed, "invalid json")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New(errors.CodeDecodeFailed, "invalid json: trailing data after document")
	}

	switch t := v.(type) {
	case *Object:
		return t, nil
	case []interface{}:
		if len(t) == 0 {
			return NewObject(), nil
		}
	}
	return nil, errors.Newf(errors.CodeDecodeFailed, "invalid json: top level is %T, want object", v)
}

// decodeValue reads one value, building *Object for objects.
func decodeValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		obj := NewObject()
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("object key %v is not a string", keyTok)
			}
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj.Set(key, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil
	case '[':
		list := []interface{}{}
		for dec.More() {
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return list, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", delim)
	}
}

// Encode renders v indented by two spaces with no trailing newline.
func Encode(v interface{}) (string, error) {
	raw, err := marshalValue(v)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeEncodeFailed, "failed to encode json")
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return "", errors.Wrap(err, errors.CodeEncodeFailed, "failed to encode json")
	}
	return out.String(), nil
}
