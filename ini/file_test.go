package ini_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/medusaphp/filesystem/billy"
	"github.com/medusaphp/filesystem/errors"
	"github.com/medusaphp/filesystem/ini"
	"github.com/medusaphp/filesystem/resource"
)

func TestFile_SetContent(t *testing.T) {
	f := ini.New(resource.NewFile("test.conf"), ini.WithSections(true))
	require.NoError(t, f.SetContent("foo=bar;"))
	require.Equal(t, map[string]interface{}{"foo": "bar"}, f.Data())

	require.NoError(t, f.SetContent("[foo]bar=biz;"))
	require.Equal(t, map[string]interface{}{"foo": map[string]interface{}{"bar": "biz"}}, f.Data())
}

func TestFile_ContentRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		sections bool
	}{
		{"plain", `bar = "biz"`, false},
		{"list", "bar[] = \"bin\"\nbar[] = \"baz\"", false},
		{"section", "\n[foo]\nbar = \"biz\"", true},
		{"section with list", "\n[foo]\nbar[] = \"bin\"\nbar[] = \"baz\"", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ini.New(resource.NewFile("test.conf"), ini.WithSections(tt.sections))
			require.NoError(t, f.SetContent(tt.text))

			got, err := f.Content()
			require.NoError(t, err)
			require.Equal(t, tt.text, got)
		})
	}
}

func TestFromFile(t *testing.T) {
	fsys := billy.NewMemory()
	require.NoError(t, fsys.WriteFile("/test.conf", []byte(`foo = "disk"`), 0o644))

	file := resource.NewFile("/test.conf", resource.WithFS(fsys))
	file.SetContent(`foo = "bar"`)

	f, err := ini.FromFile(file)
	require.NoError(t, err)
	require.Equal(t, "/test.conf", f.Location())

	got, err := f.Content()
	require.NoError(t, err)
	require.Equal(t, `foo = "bar"`, got)
}

func TestFile_LoadSave(t *testing.T) {
	fsys := billy.NewMemory()
	require.NoError(t, fsys.MkdirAll("/etc", 0o755))
	require.NoError(t, fsys.WriteFile("/etc/app.ini", []byte("[db]\nhost = localhost\nport = 5432\n"), 0o644))

	f, err := ini.Open(resource.NewFile("/etc/app.ini", resource.WithFS(fsys)),
		ini.WithSections(true), ini.WithScannerMode(ini.ScannerTyped))
	require.NoError(t, err)
	require.True(t, f.Sections())

	db := f.Data()["db"].(map[string]interface{})
	require.Equal(t, "localhost", db["host"])
	require.Equal(t, int64(5432), db["port"])

	db["user"] = "app"
	require.NoError(t, f.Save())

	data, err := fsys.ReadFile("/etc/app.ini")
	require.NoError(t, err)
	require.Equal(t, "\n[db]\nhost = \"localhost\"\nport = \"5432\"\nuser = \"app\"", string(data))
}

func TestOpen_Missing(t *testing.T) {
	f, err := ini.Open(resource.NewFile("/absent.ini", resource.WithFS(billy.NewMemory())))
	require.NoError(t, err)
	require.Empty(t, f.Data())
	require.False(t, f.Sections())
}

func TestOpen_Invalid(t *testing.T) {
	fsys := billy.NewMemory()
	require.NoError(t, fsys.WriteFile("/bad.ini", []byte("[broken"), 0o644))

	_, err := ini.Open(resource.NewFile("/bad.ini", resource.WithFS(fsys)))
	require.Equal(t, errors.CodeDecodeFailed, errors.GetCode(err))
}

func TestFile_SetData(t *testing.T) {
	f := ini.New(resource.NewFile("test.conf"))
	f.SetData(map[string]interface{}{"test2": map[string]interface{}{"x": 0, "y": "b"}})
	f.SetSections(true)

	got, err := f.Content()
	require.NoError(t, err)
	require.Equal(t, "\n[test2]\nx = \"0\"\ny = \"b\"", got)

	f.SetData(nil)
	require.NotNil(t, f.Data())

	f.SetScannerMode(ini.ScannerTyped)
	require.NoError(t, f.SetContent("n = 3"))
	require.Equal(t, int64(3), f.Data()["n"])
}
