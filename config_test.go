// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "testing"

func TestNewAppliesOptionJSON(t *testing.T) {
	m, err := New("classic", "opt-test", `{"gc_node_limit": 42, "gc_threshold": 0.5}`)
	if err != nil {
		t.Fatal(err)
	}
	if m.cfg.gcNodeLimit != 42 {
		t.Errorf("gc_node_limit = %d, want 42", m.cfg.gcNodeLimit)
	}
	if m.cfg.gcThreshold != 0.5 {
		t.Errorf("gc_threshold = %v, want 0.5", m.cfg.gcThreshold)
	}
}

func TestNewRejectsUnknownOptionKey(t *testing.T) {
	_, err := New("classic", "opt-test", `{"bogus": 1}`)
	if err == nil {
		t.Errorf("New should reject an option document with an unknown key")
	}
}

func TestNewRejectsMalformedJSON(t *testing.T) {
	_, err := New("classic", "opt-test", `not json`)
	if err == nil {
		t.Errorf("New should reject malformed option JSON")
	}
}

func TestFunctionalOptionsOverrideDocument(t *testing.T) {
	m, err := New("classic", "opt-test", `{"gc_node_limit": 42}`, GCNodeLimit(100))
	if err != nil {
		t.Fatal(err)
	}
	if m.cfg.gcNodeLimit != 100 {
		t.Errorf("explicit Option should win over the option document, got %d", m.cfg.gcNodeLimit)
	}
}

func TestUnknownKindDefaultsToClassic(t *testing.T) {
	m, err := New("bogus-kind", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := m.table.(*classicTable); !ok {
		t.Errorf("an unrecognized kind should default to the classic node table")
	}
}

func TestDefaultIsASingleton(t *testing.T) {
	a := Default()
	b := Default()
	if a != b {
		t.Errorf("Default() should return the same Manager on every call")
	}
}
