package cli

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/medusaphp/filesystem/errors"
	"github.com/medusaphp/filesystem/resource"
)

// render writes result in the named format.
func render(w io.Writer, result *resource.Result, format string) error {
	switch format {
	case "text":
		if result.IsTree() {
			writeTree(w, result.Tree(), 0)
		} else {
			c := result.Collection()
			for _, key := range c.Keys() {
				res, _ := c.Get(key)
				fmt.Fprintf(w, "%s\t%s\n", res.Kind(), key)
			}
		}
		return nil
	case "yaml":
		var node *yaml.Node
		if result.IsTree() {
			node = treeNode(result.Tree())
		} else {
			node = collectionNode(result.Collection())
		}
		return writeYAML(w, node)
	}
	return errors.Newf(errors.CodeInvalidInput, "unknown output format %q", format)
}

func writeTree(w io.Writer, t *resource.Tree, level int) {
	indent := strings.Repeat("  ", level)
	for _, key := range t.Keys() {
		if child, ok := t.Child(key); ok {
			fmt.Fprintf(w, "%s%s/\n", indent, key)
			writeTree(w, child, level+1)
			continue
		}
		res, _ := t.Get(key)
		fmt.Fprintf(w, "%s%s\t%s\n", indent, res.Kind(), key)
	}
}

// writeYAML encodes node with two space indentation.
func writeYAML(w io.Writer, node *yaml.Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return errors.Wrap(err, errors.CodeEncodeFailed, "failed to encode yaml")
	}
	return enc.Close()
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

// collectionNode maps canonical paths to resource kinds in result order.
func collectionNode(c *resource.Collection) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range c.Keys() {
		res, _ := c.Get(key)
		m.Content = append(m.Content, scalar(key), scalar(res.Kind().String()))
	}
	return m
}

func treeNode(t *resource.Tree) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range t.Keys() {
		if child, ok := t.Child(key); ok {
			m.Content = append(m.Content, scalar(key), treeNode(child))
			continue
		}
		res, _ := t.Get(key)
		m.Content = append(m.Content, scalar(key), scalar(res.Kind().String()))
	}
	return m
}

// valueNode converts decoded INI data into a yaml node with sorted keys.
func valueNode(v interface{}) *yaml.Node {
	switch t := v.(type) {
	case map[string]interface{}:
		m := &yaml.Node{Kind: yaml.MappingNode}
		for _, key := range sortedKeys(t) {
			m.Content = append(m.Content, scalar(key), valueNode(t[key]))
		}
		return m
	case []interface{}:
		s := &yaml.Node{Kind: yaml.SequenceNode}
		for _, e := range t {
			s.Content = append(s.Content, valueNode(e))
		}
		return s
	}
	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return scalar(fmt.Sprint(v))
	}
	return n
}
