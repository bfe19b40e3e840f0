package ini_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/medusaphp/filesystem/errors"
	"github.com/medusaphp/filesystem/ini"
)

func TestMarshal(t *testing.T) {
	tests := []struct {
		name     string
		data     map[string]interface{}
		sections bool
		want     string
	}{
		{
			name: "numeric list",
			data: map[string]interface{}{"test1": []interface{}{8, 9, 855}},
			want: "test1[] = \"8\"\ntest1[] = \"9\"\ntest1[] = \"855\"",
		},
		{
			name: "named keys",
			data: map[string]interface{}{"test2": map[string]interface{}{"x": 0, "y": "b"}},
			want: "test2[x] = \"0\"\ntest2[y] = \"b\"",
		},
		{
			name:     "named keys with sections",
			data:     map[string]interface{}{"test2": map[string]interface{}{"x": 0, "y": "b"}},
			sections: true,
			want:     "\n[test2]\nx = \"0\"\ny = \"b\"",
		},
		{
			name: "nested list",
			data: map[string]interface{}{"test3": map[string]interface{}{"a": []int{6, 7, 8}}},
			want: "test3[a][] = \"6\"\ntest3[a][] = \"7\"\ntest3[a][] = \"8\"",
		},
		{
			name:     "nested list with sections",
			data:     map[string]interface{}{"test3": map[string]interface{}{"a": []int{6, 7, 8}}},
			sections: true,
			want:     "\n[test3]\na[] = \"6\"\na[] = \"7\"\na[] = \"8\"",
		},
		{
			name: "deeply nested",
			data: map[string]interface{}{"test4": map[string]interface{}{
				"inner": map[string]interface{}{"more": []interface{}{5, 6}},
			}},
			want: "test4[inner][more][] = \"5\"\ntest4[inner][more][] = \"6\"",
		},
		{
			name: "deeply nested with sections",
			data: map[string]interface{}{"test4": map[string]interface{}{
				"inner": map[string]interface{}{"more": []interface{}{5, 6}},
			}},
			sections: true,
			want:     "\n[test4]\ninner[more][] = \"5\"\ninner[more][] = \"6\"",
		},
		{
			name: "sorted keys and scalars",
			data: map[string]interface{}{"b": true, "a": false, "c": 1.5, "d": nil},
			want: "a = \nb = \"1\"\nc = \"1.5\"\nd = \"\"",
		},
		{
			name: "array followed by scalar",
			data: map[string]interface{}{"a": []interface{}{"x"}, "b": "y"},
			want: "a[] = \"x\"\nb = \"y\"",
		},
		{
			name: "numeric keys sort numerically",
			data: map[string]interface{}{"l": map[string]interface{}{"10": "b", "9": "a"}},
			want: "l[9] = \"a\"\nl[10] = \"b\"",
		},
		{
			name:     "scalar beside section",
			data:     map[string]interface{}{"top": "v", "sec": map[string]string{"k": "v"}},
			sections: true,
			want:     "top = \"v\"\n\n[sec]\nk = \"v\"",
		},
		{
			name: "empty",
			data: map[string]interface{}{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ini.Marshal(tt.data, tt.sections)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestMarshal_Unsupported(t *testing.T) {
	_, err := ini.Marshal(map[string]interface{}{"ch": make(chan int)}, false)
	require.Error(t, err)
	require.Equal(t, errors.CodeEncodeFailed, errors.GetCode(err))

	_, err = ini.Marshal(map[string]interface{}{"m": map[int]string{1: "a"}}, false)
	require.Equal(t, errors.CodeEncodeFailed, errors.GetCode(err))
}

func TestUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		text string
		want map[string]interface{}
	}{
		{
			name: "trailing comment",
			text: "foo=bar;",
			want: map[string]interface{}{"foo": "bar"},
		},
		{
			name: "section on the same line",
			text: "[foo]bar=biz;",
			want: map[string]interface{}{"foo": map[string]interface{}{"bar": "biz"}},
		},
		{
			name: "quoted values",
			text: "a = \"x ; y\"\nb = 'z'",
			want: map[string]interface{}{"a": "x ; y", "b": "z"},
		},
		{
			name: "comments and blank lines",
			text: "; note\n# other\n\na = 1\r\n",
			want: map[string]interface{}{"a": "1"},
		},
		{
			name: "list",
			text: "bar[] = \"bin\"\nbar[] = \"baz\"",
			want: map[string]interface{}{"bar": []interface{}{"bin", "baz"}},
		},
		{
			name: "named offsets",
			text: "m[x] = 1\nm[y] = 2",
			want: map[string]interface{}{"m": map[string]interface{}{"x": "1", "y": "2"}},
		},
		{
			name: "mixed offsets",
			text: "m[] = a\nm[k] = b\nm[] = c",
			want: map[string]interface{}{"m": map[string]interface{}{"0": "a", "k": "b", "1": "c"}},
		},
		{
			name: "nested offsets in a section",
			text: "[s]\ninner[more][] = 5\ninner[more][] = 6",
			want: map[string]interface{}{"s": map[string]interface{}{
				"inner": map[string]interface{}{"more": []interface{}{"5", "6"}},
			}},
		},
		{
			name: "key without value",
			text: "flag",
			want: map[string]interface{}{"flag": ""},
		},
		{
			name: "repeated section merges",
			text: "[s]\na = 1\n[t]\nb = 2\n[s]\nc = 3",
			want: map[string]interface{}{
				"s": map[string]interface{}{"a": "1", "c": "3"},
				"t": map[string]interface{}{"b": "2"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ini.Unmarshal(tt.text, ini.ScannerRaw)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestUnmarshal_Typed(t *testing.T) {
	got, err := ini.Unmarshal("i = 42\nf = \"1.5\"\nt = on\nn = none\nz = null\ns = word\nq = \"yes\"", ini.ScannerTyped)
	require.NoError(t, err)
	require.Equal(t, map[string]interface{}{
		"i": int64(42),
		"f": 1.5,
		"t": true,
		"n": false,
		"z": nil,
		"s": "word",
		"q": "yes",
	}, got)
}

func TestUnmarshal_Errors(t *testing.T) {
	for _, text := range []string{
		"[open",
		"[]",
		"= value",
		"a = \"unterminated",
		"a[b = 1",
		"a[b]c = 1",
	} {
		t.Run(text, func(t *testing.T) {
			_, err := ini.Unmarshal(text, ini.ScannerRaw)
			require.Error(t, err)
			require.Equal(t, errors.CodeDecodeFailed, errors.GetCode(err))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	text := "test1[] = \"8\"\ntest1[] = \"9\"\ntest1[] = \"855\""

	data, err := ini.Unmarshal(text, ini.ScannerTyped)
	require.NoError(t, err)
	require.Equal(t, map[string]interface{}{
		"test1": []interface{}{int64(8), int64(9), int64(855)},
	}, data)

	encoded, err := ini.Marshal(data, false)
	require.NoError(t, err)
	require.Equal(t, text, encoded)

	raw, err := ini.Unmarshal(text, ini.ScannerRaw)
	require.NoError(t, err)
	encoded, err = ini.Marshal(raw, false)
	require.NoError(t, err)
	require.Equal(t, text, encoded)
}
