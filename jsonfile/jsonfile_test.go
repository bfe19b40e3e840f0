package jsonfile_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/medusaphp/filesystem/billy"
	"github.com/medusaphp/filesystem/errors"
	"github.com/medusaphp/filesystem/jsonfile"
	"github.com/medusaphp/filesystem/resource"
)

func TestDecode_KeepsOrder(t *testing.T) {
	obj, err := jsonfile.Decode(`{"name": "a/b", "type": "library", "require": {"z": "1", "a": "2"}}`)
	require.NoError(t, err)
	require.Equal(t, []string{"name", "type", "require"}, obj.Keys())

	req, ok := obj.Get("require")
	require.True(t, ok)
	require.Equal(t, []string{"z", "a"}, req.(*jsonfile.Object).Keys())
}

func TestDecode_Numbers(t *testing.T) {
	obj, err := jsonfile.Decode(`{"big": 12345678901234567890, "f": 1.50}`)
	require.NoError(t, err)

	big, _ := obj.Get("big")
	require.Equal(t, json.Number("12345678901234567890"), big)

	text, err := jsonfile.Encode(obj)
	require.NoError(t, err)
	require.Equal(t, "{\n  \"big\": 12345678901234567890,\n  \"f\": 1.50\n}", text)
}

func TestDecode_TopLevel(t *testing.T) {
	for _, text := range []string{"", "  ", "[]"} {
		obj, err := jsonfile.Decode(text)
		require.NoError(t, err, text)
		require.Zero(t, obj.Len())
	}

	for _, text := range []string{`[1]`, `"str"`, `{"a":`, `{} {}`, `{"a": 1,}`} {
		_, err := jsonfile.Decode(text)
		require.Error(t, err, text)
		require.Equal(t, errors.CodeDecodeFailed, errors.GetCode(err), text)
	}
}

func TestEncode_Format(t *testing.T) {
	obj := jsonfile.NewObject()
	obj.Set("url", "https://example.org/a?b=1&c=<d>")
	obj.Set("list", []interface{}{"x", true, nil})
	obj.Set("empty", jsonfile.NewObject())

	text, err := jsonfile.Encode(obj)
	require.NoError(t, err)
	require.Equal(t, `{
  "url": "https://example.org/a?b=1&c=<d>",
  "list": [
    "x",
    true,
    null
  ],
  "empty": {}
}`, text)
}

func TestObject_SetDelete(t *testing.T) {
	obj := jsonfile.NewObject()
	obj.Set("a", 1)
	obj.Set("b", 2)
	obj.Set("c", 3)
	obj.Set("a", 4)
	require.Equal(t, []string{"a", "b", "c"}, obj.Keys())

	v, _ := obj.Get("a")
	require.Equal(t, 4, v)

	obj.Delete("b")
	obj.Delete("missing")
	require.Equal(t, []string{"a", "c"}, obj.Keys())

	clone := obj.Clone()
	clone.Set("d", 5)
	require.Equal(t, 2, obj.Len())
	require.Equal(t, 3, clone.Len())

	require.Equal(t, map[string]interface{}{"a": 4, "c": 3}, obj.Map())
}

func TestObject_Unmarshal(t *testing.T) {
	var doc struct {
		Extra *jsonfile.Object `json:"extra"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"extra": {"y": 1, "x": {"k": [1]}}}`), &doc))
	require.Equal(t, []string{"y", "x"}, doc.Extra.Keys())
	require.Equal(t, map[string]interface{}{
		"y": json.Number("1"),
		"x": map[string]interface{}{"k": []interface{}{json.Number("1")}},
	}, doc.Extra.Map())
}

func TestFile_LoadSave(t *testing.T) {
	fsys := billy.NewMemory()
	require.NoError(t, fsys.WriteFile("/package.json", []byte(`{"name":"demo","version":"1.0.0"}`), 0o644))

	f, err := jsonfile.Open(resource.NewFile("/package.json", resource.WithFS(fsys)))
	require.NoError(t, err)

	name, _ := f.Data().Get("name")
	require.Equal(t, "demo", name)

	f.Data().Set("private", true)
	require.NoError(t, f.Save())

	data, err := fsys.ReadFile("/package.json")
	require.NoError(t, err)
	require.Equal(t, "{\n  \"name\": \"demo\",\n  \"version\": \"1.0.0\",\n  \"private\": true\n}", string(data))

	text, err := f.JSON()
	require.NoError(t, err)
	require.Equal(t, string(data), text)
}

func TestFromFile(t *testing.T) {
	file := resource.NewFile("/x.json", resource.WithFS(billy.NewMemory()))
	file.SetContent(`{"a": "b"}`)

	f, err := jsonfile.FromFile(file)
	require.NoError(t, err)

	text, err := f.Content()
	require.NoError(t, err)
	require.Equal(t, "{\n  \"a\": \"b\"\n}", text)
}

func TestOpen_Invalid(t *testing.T) {
	fsys := billy.NewMemory()
	require.NoError(t, fsys.WriteFile("/bad.json", []byte(`{`), 0o644))

	_, err := jsonfile.Open(resource.NewFile("/bad.json", resource.WithFS(fsys)))
	require.Equal(t, errors.CodeDecodeFailed, errors.GetCode(err))
}

func TestFile_SetData(t *testing.T) {
	f := jsonfile.New(resource.NewFile("/x.json", resource.WithFS(billy.NewMemory())))
	f.SetData(nil)
	require.NotNil(t, f.Data())

	text, err := f.JSON()
	require.NoError(t, err)
	require.Equal(t, "{}", text)
}
