package ini

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/medusaphp/filesystem/errors"
)

// Marshal encodes data as INI text. Lines are separated by "\n" and the
// result carries no trailing newline.
func Marshal(data map[string]interface{}, sections bool) (string, error) {
	var lines []string
	if err := encode(&lines, reflect.ValueOf(data), sections, ""); err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// encode appends the lines for one nesting level. prefix is the bracket key
// built so far, empty at the top level and directly below a section header.
func encode(lines *[]string, v reflect.Value, sections bool, prefix string) error {
	v = indirect(v)
	if !v.IsValid() {
		return nil
	}

	keys, values, err := entries(v)
	if err != nil {
		return err
	}
	list := isList(keys)
	if sections {
		keys, values = scalarsFirst(keys, values)
	}

	for i, key := range keys {
		value := indirect(values[i])

		name := key
		if prefix != "" {
			if list {
				name = prefix + "[]"
			} else {
				name = prefix + "[" + key + "]"
			}
		}

		if isContainer(value) {
			if sections {
				*lines = append(*lines, "", "["+key+"]")
				name = ""
			}
			if err := encode(lines, value, false, name); err != nil {
				return err
			}
			continue
		}

		text, err := scalar(value)
		if err != nil {
			return errors.WithContext(err, "key", name)
		}
		*lines = append(*lines, name+" = "+text)
	}
	return nil
}

// scalarsFirst moves scalar entries ahead of containers so that top-level
// keys are never written below a section header.
func scalarsFirst(keys []string, values []reflect.Value) ([]string, []reflect.Value) {
	outKeys := make([]string, 0, len(keys))
	outValues := make([]reflect.Value, 0, len(values))
	for _, containers := range []bool{false, true} {
		for i, v := range values {
			if isContainer(indirect(v)) == containers {
				outKeys = append(outKeys, keys[i])
				outValues = append(outValues, v)
			}
		}
	}
	return outKeys, outValues
}

// entries returns the keys of a map or slice in sorted order along with
// their values.
func entries(v reflect.Value) ([]string, []reflect.Value, error) {
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		keys := make([]string, v.Len())
		values := make([]reflect.Value, v.Len())
		for i := 0; i < v.Len(); i++ {
			keys[i] = strconv.Itoa(i)
			values[i] = v.Index(i)
		}
		return keys, values, nil
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, nil, errors.Newf(errors.CodeEncodeFailed, "unsupported map key type %s", v.Type().Key())
		}
		keys := make([]string, 0, v.Len())
		for _, k := range v.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Slice(keys, func(i, j int) bool { return keyLess(keys[i], keys[j]) })
		values := make([]reflect.Value, len(keys))
		for i, k := range keys {
			values[i] = v.MapIndex(reflect.ValueOf(k).Convert(v.Type().Key()))
		}
		return keys, values, nil
	default:
		return nil, nil, errors.Newf(errors.CodeEncodeFailed, "unsupported container type %s", v.Type())
	}
}

// keyLess orders numeric keys numerically and before any other key.
func keyLess(a, b string) bool {
	ai, aErr := strconv.Atoi(a)
	bi, bErr := strconv.Atoi(b)
	switch {
	case aErr == nil && bErr == nil:
		return ai < bi
	case aErr == nil:
		return true
	case bErr == nil:
		return false
	default:
		return a < b
	}
}

// isList reports whether keys are exactly 0..n-1.
func isList(keys []string) bool {
	for i, k := range keys {
		if k != strconv.Itoa(i) {
			return false
		}
	}
	return true
}

func isContainer(v reflect.Value) bool {
	if !v.IsValid() {
		return false
	}
	switch v.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return v.Type().Elem().Kind() != reflect.Uint8 || v.Kind() == reflect.Map
	}
	return false
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// scalar renders a leaf value. Booleans become "1" or nothing and nil
// becomes an empty quoted string.
func scalar(v reflect.Value) (string, error) {
	if !v.IsValid() {
		return `""`, nil
	}
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return `"1"`, nil
		}
		return "", nil
	case reflect.String:
		return quote(v.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return quote(strconv.FormatInt(v.Int(), 10)), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return quote(strconv.FormatUint(v.Uint(), 10)), nil
	case reflect.Float32, reflect.Float64:
		return quote(strconv.FormatFloat(v.Float(), 'f', -1, v.Type().Bits())), nil
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return quote(string(v.Bytes())), nil
		}
	}
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return quote(s.String()), nil
	}
	return "", errors.Newf(errors.CodeEncodeFailed, "unsupported value type %s", v.Type())
}

func quote(s string) string {
	return `"` + s + `"`
}
