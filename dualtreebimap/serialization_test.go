package dualtreebimap_test

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v2"

	"github.com/qntx/bidimap/dualtreebimap"
)

func TestMapJSONRoundTrip(t *testing.T) {
	t.Parallel()

	m := dualtreebimap.New[string, int]()
	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("c", 3)

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	restored := dualtreebimap.New[string, int]()
	if err := json.Unmarshal(data, restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if !m.Equal(restored) {
		t.Errorf("restored map %v != original %v", restored, m)
	}
}

func TestMapJSONInvalid(t *testing.T) {
	t.Parallel()

	m := dualtreebimap.New[string, int]()

	if err := m.FromJSON([]byte(`{broken`)); err == nil {
		t.Errorf("FromJSON(broken) error = nil, want error")
	}
}

func TestMapYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	m := dualtreebimap.New[string, int]()
	m.Put("b", 2)
	m.Put("a", 1)

	data, err := yaml.Marshal(m)
	if err != nil {
		t.Fatalf("yaml.Marshal() error: %v", err)
	}

	// The document lists pairs in forward key order.
	text := string(data)
	if strings.Index(text, "a:") > strings.Index(text, "b:") {
		t.Errorf("YAML output not in key order:\n%s", text)
	}

	restored := dualtreebimap.New[string, int]()
	if err := yaml.Unmarshal(data, restored); err != nil {
		t.Fatalf("yaml.Unmarshal() error: %v", err)
	}

	if !m.Equal(restored) {
		t.Errorf("restored map %v != original %v", restored, m)
	}
}

func TestMapJSONCollapsesCollisions(t *testing.T) {
	t.Parallel()

	// Two keys with the same value collapse on restore exactly as live puts
	// would: one survivor holds the value.
	m := dualtreebimap.New[string, int]()
	if err := m.FromJSON([]byte(`{"a":1,"b":1}`)); err != nil {
		t.Fatalf("FromJSON() error: %v", err)
	}

	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}

	if _, found := m.GetKey(1); !found {
		t.Errorf("GetKey(1) reported absent after restore")
	}
}
