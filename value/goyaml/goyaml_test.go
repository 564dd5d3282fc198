package goyaml

import (
	"reflect"
	"strings"
	"testing"

	"github.com/alekece/json-toolkit/jsonptr"
	"github.com/alekece/json-toolkit/value"
	"gopkg.in/yaml.v3"
)

var adapter = Adapter{}

func parseYAML(t *testing.T, src string) *yaml.Node {
	t.Helper()
	root, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return root
}

func TestAdapter_Kind(t *testing.T) {
	root := parseYAML(t, `
object: {a: 1}
array: [1, 2]
string: hello
quoted: "123"
integer: 42
float: 1.5
boolean: true
null_value: null
empty:
`)

	tests := []struct {
		key  string
		want value.Kind
	}{
		{key: "object", want: value.Object},
		{key: "array", want: value.Array},
		{key: "string", want: value.String},
		{key: "quoted", want: value.String},
		{key: "integer", want: value.Number},
		{key: "float", want: value.Number},
		{key: "boolean", want: value.Bool},
		{key: "null_value", want: value.Null},
		{key: "empty", want: value.Null},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			child, ok := adapter.Key(root, tt.key)
			if !ok {
				t.Fatalf("Key(%q) not found", tt.key)
			}
			if got := adapter.Kind(child); got != tt.want {
				t.Errorf("Kind(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}

	if got := adapter.Kind(root); got != value.Object {
		t.Errorf("Kind(document root) = %v, want object", got)
	}
}

func TestGet_ResolvesAliases(t *testing.T) {
	root := parseYAML(t, `
defaults: &defaults
  host: localhost
server: *defaults
`)

	got, ok := value.Get[*yaml.Node](adapter, root, jsonptr.MustParse("/server/host"))
	if !ok {
		t.Fatal("Get() through alias not found")
	}
	if ToGo(got) != "localhost" {
		t.Errorf("Get() = %v, want %q", ToGo(got), "localhost")
	}
}

func TestInsert(t *testing.T) {
	root := parseYAML(t, `
server:
  host: localhost
`)

	prev, replaced, err := value.Insert[*yaml.Node](adapter, &root, jsonptr.MustParse("/server/port"), FromGo(8080))
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if replaced || prev != nil {
		t.Errorf("Insert() of new key prev = %v, %v", prev, replaced)
	}

	want := map[string]any{"server": map[string]any{"host": "localhost", "port": 8080}}
	if got := ToGo(root); !reflect.DeepEqual(got, want) {
		t.Errorf("tree after insert = %v, want %v", got, want)
	}
}

func TestInsert_OverwriteReturnsPrevious(t *testing.T) {
	root := parseYAML(t, "foo: bar\n")

	prev, replaced, err := value.Insert[*yaml.Node](adapter, &root, jsonptr.MustParse("/foo"), FromGo(42))
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if !replaced || ToGo(prev) != "bar" {
		t.Errorf("Insert() prev = %v, %v, want %q, true", ToGo(prev), replaced, "bar")
	}
	if got := ToGo(root); !reflect.DeepEqual(got, map[string]any{"foo": 42}) {
		t.Errorf("tree after insert = %v", got)
	}
}

func TestInsert_AutoVivification(t *testing.T) {
	root := parseYAML(t, "a: 1\n")

	if _, _, err := value.Insert[*yaml.Node](adapter, &root, jsonptr.MustParse("/b/0/c"), FromGo("x")); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	want := map[string]any{
		"a": 1,
		"b": []any{map[string]any{"c": "x"}},
	}
	if got := ToGo(root); !reflect.DeepEqual(got, want) {
		t.Errorf("tree after insert = %v, want %v", got, want)
	}
}

func TestInsert_ScalarTraversal(t *testing.T) {
	root := parseYAML(t, "a: 1\n")

	if _, _, err := value.Insert[*yaml.Node](adapter, &root, jsonptr.MustParse("/a/b"), FromGo(2)); err == nil {
		t.Fatal("Insert() through scalar expected error, got nil")
	}
	if got := ToGo(root); !reflect.DeepEqual(got, map[string]any{"a": 1}) {
		t.Errorf("failed insert modified the tree: %v", got)
	}
}

func TestRemove(t *testing.T) {
	root := parseYAML(t, `
keep: 1
drop: 2
items: [a, b, c]
`)

	removed, ok, err := value.Remove[*yaml.Node](adapter, &root, jsonptr.MustParse("/drop"))
	if err != nil || !ok {
		t.Fatalf("Remove() = %v, %v", ok, err)
	}
	if ToGo(removed) != 2 {
		t.Errorf("Remove() = %v, want 2", ToGo(removed))
	}

	removed, ok, err = value.Remove[*yaml.Node](adapter, &root, jsonptr.MustParse("/items/1"))
	if err != nil || !ok {
		t.Fatalf("Remove() = %v, %v", ok, err)
	}
	if ToGo(removed) != "b" {
		t.Errorf("Remove() = %v, want %q", ToGo(removed), "b")
	}

	want := map[string]any{"keep": 1, "items": []any{"a", "c"}}
	if got := ToGo(root); !reflect.DeepEqual(got, want) {
		t.Errorf("tree after removals = %v, want %v", got, want)
	}
}

func TestEdit_PreservesComments(t *testing.T) {
	root := parseYAML(t, `# deployment configuration
server:
  host: localhost # local only
  debug: true
`)

	if _, _, err := value.Remove[*yaml.Node](adapter, &root, jsonptr.MustParse("/server/debug")); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	out, err := Marshal(root)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	for _, comment := range []string{"# deployment configuration", "# local only"} {
		if !strings.Contains(string(out), comment) {
			t.Errorf("output lost comment %q:\n%s", comment, out)
		}
	}
	if strings.Contains(string(out), "debug") {
		t.Errorf("output still contains removed key:\n%s", out)
	}
}

func TestFromGoToGo_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{name: "nil", input: nil},
		{name: "bool", input: true},
		{name: "string", input: "hello"},
		{name: "int", input: 42},
		{name: "float", input: 1.5},
		{name: "array", input: []any{1, "two", false}},
		{
			name: "nested object",
			input: map[string]any{
				"server": map[string]any{"host": "localhost", "port": 8080},
				"tags":   []any{"a", "b"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToGo(FromGo(tt.input))
			if !reflect.DeepEqual(got, tt.input) {
				t.Errorf("round trip = %v (%T), want %v (%T)", got, got, tt.input, tt.input)
			}
		})
	}
}

func TestParse_Empty(t *testing.T) {
	root, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error = %v", err)
	}
	if got := adapter.Kind(root); got != value.Null {
		t.Errorf("Kind of empty document = %v, want null", got)
	}
}
