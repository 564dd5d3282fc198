package toml

import (
	"reflect"
	"testing"
)

var sample = []byte(`[server]
host = "localhost"
port = 8080

[[accounts]]
name = "alice"

[[accounts]]
name = "bob"
`)

func TestGet(t *testing.T) {
	tests := []struct {
		name    string
		pointer string
		want    any
		found   bool
	}{
		{
			name:    "table key",
			pointer: "/server/host",
			want:    "localhost",
			found:   true,
		},
		{
			name:    "integer decodes as int64",
			pointer: "/server/port",
			want:    int64(8080),
			found:   true,
		},
		{
			name:    "array of tables",
			pointer: "/accounts/1/name",
			want:    "bob",
			found:   true,
		},
		{
			name:    "missing key",
			pointer: "/server/missing",
			found:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found, err := Get(sample, tt.pointer)
			if err != nil {
				t.Fatalf("Get(%q) error = %v", tt.pointer, err)
			}
			if found != tt.found {
				t.Fatalf("Get(%q) found = %v, want %v", tt.pointer, found, tt.found)
			}
			if found && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Get(%q) = %v (%T), want %v", tt.pointer, got, got, tt.want)
			}
		})
	}
}

func TestInsert(t *testing.T) {
	out, err := Insert(sample, "/server/timeout", 30)
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	got, found, err := Get(out, "/server/timeout")
	if err != nil || !found {
		t.Fatalf("Get() after insert = %v, %v", found, err)
	}
	if got != int64(30) {
		t.Errorf("Get() after insert = %v (%T), want 30", got, got)
	}
	if got, _, _ := Get(out, "/accounts/0/name"); got != "alice" {
		t.Errorf("existing value lost: %v", got)
	}
}

func TestInsert_EmptyDocument(t *testing.T) {
	out, err := Insert(nil, "/server/host", "localhost")
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if got, _, _ := Get(out, "/server/host"); got != "localhost" {
		t.Errorf("Get() after insert = %v", got)
	}
}

func TestRemove(t *testing.T) {
	out, removed, err := Remove(sample, "/accounts/0")
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if !removed {
		t.Fatal("Remove() removed = false")
	}

	got, found, err := Get(out, "/accounts")
	if err != nil || !found {
		t.Fatalf("Get() after remove = %v, %v", found, err)
	}
	want := []any{map[string]any{"name": "bob"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("accounts after remove = %v, want %v", got, want)
	}

	if _, removed, _ := Remove(sample, "/nope"); removed {
		t.Error("Remove() of absent path removed = true")
	}
}
