package urlfor

import (
	"html/template"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/paramkit/params"
)

func render(t *testing.T, h *Helper, text string, data any) (string, error) {
	t.Helper()
	tmpl, err := template.New("test").Funcs(h.FuncMap()).Parse(text)
	require.NoError(t, err)

	var sb strings.Builder
	err = tmpl.Execute(&sb, data)
	return sb.String(), err
}

func TestFuncMap(t *testing.T) {
	h := newTestHelper(t, "/items?page=2&sort=name", Config{})

	tests := []struct {
		name string
		text string
		data any
		want string
	}{
		{
			name: "merge url for pairs",
			text: `{{ merge_url_for "page" 3 }}`,
			want: "/items?page=3&amp;sort=name",
		},
		{
			name: "merge url for nil removes",
			text: `<a href="{{ merge_url_for "sort" nil }}">x</a>`,
			want: `<a href="/items?page=2">x</a>`,
		},
		{
			name: "merge url for map",
			text: `<a href="{{ merge_url_for . }}">x</a>`,
			data: map[string]any{"filter": map[string]any{"status": "open"}},
			want: `<a href="/items?filter[status]=open&amp;page=2&amp;sort=name">x</a>`,
		},
		{
			name: "add params to",
			text: `<a href="{{ add_params_to "/export" "format" "csv" }}">x</a>`,
			want: `<a href="/export?format=csv">x</a>`,
		},
		{
			name: "add params",
			text: `<a href="{{ add_params "q" "go" }}">x</a>`,
			want: `<a href="/items?page=2&amp;q=go&amp;sort=name">x</a>`,
		},
		{
			name: "slice params",
			text: `{{ index (slice_params "page") "page" }}`,
			want: "2",
		},
		{
			name: "merge params",
			text: `{{ len (merge_params "page" nil) }}`,
			want: "1",
		},
		{
			name: "query params",
			text: `{{ range $k, $v := query_params }}{{ $k }}={{ $v }};{{ end }}`,
			want: "page=2;sort=name;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := render(t, h, tt.text, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFuncMapErrors(t *testing.T) {
	h := newTestHelper(t, "/items", Config{})

	_, err := render(t, h, `{{ merge_url_for "page" }}`, nil)
	assert.ErrorContains(t, err, "multiple of 2")

	_, err = render(t, h, `{{ add_params 1 2 }}`, nil)
	assert.ErrorContains(t, err, "not string")
}

func TestPatchFromArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []any
		want    params.Tree
		wantErr bool
	}{
		{
			name: "empty",
			args: nil,
			want: params.Tree{},
		},
		{
			name: "pairs",
			args: []any{"a", 1, "b", nil, "c", []string{"x"}},
			want: params.Tree{"a": params.Int(1), "b": params.Null(), "c": params.List("x")},
		},
		{
			name: "tree",
			args: []any{params.Tree{"a": params.String("1")}},
			want: params.Tree{"a": params.String("1")},
		},
		{
			name: "map",
			args: []any{map[string]any{"a": map[string]any{"b": "c"}}},
			want: params.Tree{"a": params.Nested(params.Tree{"b": params.String("c")})},
		},
		{
			name:    "odd count",
			args:    []any{"a", 1, "b"},
			wantErr: true,
		},
		{
			name:    "single non-map",
			args:    []any{"a"},
			wantErr: true,
		},
		{
			name:    "non-string key",
			args:    []any{1, "a"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := patchFromArgs(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assertTree(t, tt.want, got)
		})
	}
}
