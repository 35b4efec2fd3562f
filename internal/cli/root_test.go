package cli

import (
	"testing"
	"time"
)

func TestParseDateFlag(t *testing.T) {
	got, err := parseDateFlag("2017-05-04")
	if err != nil {
		t.Fatalf("parseDateFlag() error = %v", err)
	}
	if want := time.Date(2017, 5, 4, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("parseDateFlag() = %v, want %v", got, want)
	}

	got, err = parseDateFlag("")
	if err != nil || got != nil {
		t.Errorf("parseDateFlag(\"\") = %v, %v, want nil, nil", got, err)
	}

	if _, err := parseDateFlag("04/05/2017"); err == nil {
		t.Error("parseDateFlag() expected an error for a non-ISO date")
	}
}

func TestRootCommandTree(t *testing.T) {
	root := NewRootCommand()

	want := map[string]bool{
		"import":     false,
		"activities": false,
		"history":    false,
		"trimp":      false,
		"geojson":    false,
		"profile":    false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}
