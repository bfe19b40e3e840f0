package ini

import (
	"strconv"
	"strings"

	"github.com/medusaphp/filesystem/errors"
)

// ScannerMode controls how values are interpreted while decoding.
type ScannerMode int

const (
	// ScannerRaw keeps every value as the string written in the document.
	ScannerRaw ScannerMode = iota
	// ScannerTyped converts numbers to int64 or float64, and the unquoted
	// words true/on/yes, false/off/no/none and null to bool or nil.
	ScannerTyped
)

// Unmarshal decodes INI text. Keys before the first section header live at
// the top level and every [section] becomes a nested map. Bracket keys
// build nested values: name[] appends to a list and name[key] sets a map
// entry. Text after ';' or '#' at the start of a line, or after an
// unquoted value, is a comment.
func Unmarshal(text string, mode ScannerMode) (map[string]interface{}, error) {
	root := newNode()
	current := root

	for n, raw := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line := strings.TrimSpace(raw)

		if strings.HasPrefix(line, "[") {
			end := strings.IndexByte(line, ']')
			if end < 0 {
				return nil, decodeError(n, "unterminated section header")
			}
			name := strings.TrimSpace(line[1:end])
			if name == "" {
				return nil, decodeError(n, "empty section name")
			}
			current = root.section(name)
			line = strings.TrimSpace(line[end+1:])
		}

		if line == "" || line[0] == ';' || line[0] == '#' {
			continue
		}

		key, value, hasValue := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, decodeError(n, "missing key")
		}

		var parsed interface{} = ""
		if hasValue {
			v, err := parseValue(strings.TrimSpace(value), mode)
			if err != nil {
				return nil, decodeError(n, err.Message())
			}
			parsed = v
		}

		name, path, err := splitKey(key)
		if err != nil {
			return nil, decodeError(n, err.Message())
		}
		current.set(name, path, parsed)
	}

	return root.value().(map[string]interface{}), nil
}

func decodeError(line int, msg string) error {
	return errors.WithContext(
		errors.Newf(errors.CodeDecodeFailed, "invalid ini: %s", msg),
		"line", line+1)
}

// parseValue strips quotes and trailing comments from a value.
func parseValue(v string, mode ScannerMode) (interface{}, errors.ResourceError) {
	if v != "" && (v[0] == '"' || v[0] == '\'') {
		end := strings.IndexByte(v[1:], v[0])
		if end < 0 {
			return nil, errors.New(errors.CodeDecodeFailed, "unterminated quoted value")
		}
		s := v[1 : end+1]
		if mode == ScannerTyped {
			return number(s), nil
		}
		return s, nil
	}

	if i := strings.IndexAny(v, ";#"); i >= 0 {
		v = strings.TrimSpace(v[:i])
	}
	if mode != ScannerTyped {
		return v, nil
	}
	switch strings.ToLower(v) {
	case "true", "on", "yes":
		return true, nil
	case "false", "off", "no", "none":
		return false, nil
	case "null":
		return nil, nil
	}
	return number(v), nil
}

// number converts s to int64 or float64 when it is numeric.
func number(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !strings.ContainsAny(s, "xXnN") {
		return f
	}
	return s
}

// splitKey separates name[a][] into "name" and the offsets "a" and "".
func splitKey(key string) (string, []string, errors.ResourceError) {
	open := strings.IndexByte(key, '[')
	if open < 0 {
		return key, nil, nil
	}
	name := strings.TrimSpace(key[:open])
	if name == "" {
		return "", nil, errors.New(errors.CodeDecodeFailed, "missing key")
	}

	var path []string
	rest := key[open:]
	for rest != "" {
		if rest[0] != '[' {
			return "", nil, errors.Newf(errors.CodeDecodeFailed, "malformed key %q", key)
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return "", nil, errors.Newf(errors.CodeDecodeFailed, "malformed key %q", key)
		}
		path = append(path, strings.TrimSpace(rest[1:end]))
		rest = strings.TrimSpace(rest[end+1:])
	}
	return name, path, nil
}

// node is a container under construction. It stays a list while every key
// was appended with [] and becomes a map once a named key is used.
type node struct {
	list    []interface{}
	entries map[string]interface{}
	isMap   bool
}

func newNode() *node {
	return &node{entries: make(map[string]interface{}), isMap: true}
}

func newList() *node {
	return &node{}
}

// toMap converts a list node to a map keyed by position.
func (n *node) toMap() {
	if n.isMap {
		return
	}
	n.entries = make(map[string]interface{}, len(n.list))
	for i, v := range n.list {
		n.entries[strconv.Itoa(i)] = v
	}
	n.list = nil
	n.isMap = true
}

// nextIndex returns the key [] appends under.
func (n *node) nextIndex() string {
	if !n.isMap {
		return strconv.Itoa(len(n.list))
	}
	next := 0
	for k := range n.entries {
		if i, err := strconv.Atoi(k); err == nil && i >= next {
			next = i + 1
		}
	}
	return strconv.Itoa(next)
}

func (n *node) get(key string) (interface{}, bool) {
	if !n.isMap {
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= len(n.list) {
			return nil, false
		}
		return n.list[i], true
	}
	v, ok := n.entries[key]
	return v, ok
}

func (n *node) put(key string, v interface{}) {
	if key == "" {
		key = n.nextIndex()
	}
	if !n.isMap {
		if key == strconv.Itoa(len(n.list)) {
			n.list = append(n.list, v)
			return
		}
		if i, err := strconv.Atoi(key); err == nil && i >= 0 && i < len(n.list) {
			n.list[i] = v
			return
		}
		n.toMap()
	}
	n.entries[key] = v
}

// section returns the map for a section header, creating it on first use.
func (n *node) section(name string) *node {
	if existing, ok := n.get(name); ok {
		if child, ok := existing.(*node); ok {
			return child
		}
	}
	child := newNode()
	n.put(name, child)
	return child
}

// set stores v under name and the bracket offsets in path.
func (n *node) set(name string, path []string, v interface{}) {
	if len(path) == 0 {
		n.put(name, v)
		return
	}

	container := n
	key := name
	for _, offset := range path {
		var child *node
		if existing, ok := container.get(key); ok {
			child, _ = existing.(*node)
		}
		if child == nil {
			child = newList()
			container.put(key, child)
		}
		container = child
		key = offset
	}
	container.put(key, v)
}

// value converts the node tree to plain maps and slices.
func (n *node) value() interface{} {
	if !n.isMap {
		out := make([]interface{}, len(n.list))
		for i, v := range n.list {
			out[i] = plain(v)
		}
		return out
	}
	out := make(map[string]interface{}, len(n.entries))
	for k, v := range n.entries {
		out[k] = plain(v)
	}
	return out
}

func plain(v interface{}) interface{} {
	if n, ok := v.(*node); ok {
		return n.value()
	}
	return v
}
