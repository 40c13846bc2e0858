package manifest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func sampleManifest() *RunManifest {
	return &RunManifest{
		ID:        "0b7c6a5e-7c37-4c1f-9b8e-2f0b1d6c9a11",
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Generator: "symdoc v1.2.0",
		Inputs: Inputs{
			IndexHash: "index-hash",
			Pages:     map[string]string{"docs/intro.md": "page-hash"},
		},
		Settings: Settings{
			Project:        "geo",
			ProjectVersion: "2.1",
			RepositoryURL:  "https://github.com/acme/geo",
			Branch:         "main",
			Workers:        4,
		},
		Outputs: Outputs{
			Pages:          map[string]int{"records": 3, "functions": 2},
			Warnings:       map[string]int{"missing_member": 1},
			Bytes:          2048,
			ArtifactHashes: map[string]string{"index.html": "abc"},
		},
		Status:   "warning",
		Duration: 1500,
	}
}

func TestManifestSerialization(t *testing.T) {
	m := sampleManifest()

	jsonData, err := m.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	restored, err := FromJSON(jsonData)
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}

	if restored.ID != m.ID {
		t.Errorf("expected ID %s, got %s", m.ID, restored.ID)
	}
	if !restored.Timestamp.Equal(m.Timestamp) {
		t.Errorf("expected timestamp %v, got %v", m.Timestamp, restored.Timestamp)
	}
	if restored.Inputs.IndexHash != m.Inputs.IndexHash {
		t.Errorf("expected index hash %s, got %s", m.Inputs.IndexHash, restored.Inputs.IndexHash)
	}
	if restored.Outputs.Pages["records"] != 3 {
		t.Errorf("expected 3 record pages, got %d", restored.Outputs.Pages["records"])
	}
	if restored.Settings != m.Settings {
		t.Errorf("settings mismatch: %+v", restored.Settings)
	}
}

func TestFromJSONRejectsGarbage(t *testing.T) {
	if _, err := FromJSON([]byte("{not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestManifestHash(t *testing.T) {
	m1 := sampleManifest()
	m2 := sampleManifest()
	// Run identity and outputs do not take part in the hash.
	m2.ID = "other"
	m2.Timestamp = m2.Timestamp.Add(time.Hour)
	m2.Outputs.Bytes = 1

	h1, err := m1.Hash()
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	h2, err := m2.Hash()
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if h1 != h2 {
		t.Errorf("expected equal hashes, got %s and %s", h1, h2)
	}

	m2.Settings.Minimal = true
	h3, _ := m2.Hash()
	if h1 == h3 {
		t.Error("expected different hash after a settings change")
	}
}

func TestHashInputsAndOutputs(t *testing.T) {
	dir := t.TempDir()
	index := filepath.Join(dir, "symbols.json")
	page := filepath.Join(dir, "intro.md")
	if err := os.WriteFile(index, []byte(`{"records":[]}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(page, []byte("# Intro\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	in, err := HashInputs(index, []string{page})
	if err != nil {
		t.Fatalf("HashInputs failed: %v", err)
	}
	if len(in.IndexHash) != 64 {
		t.Errorf("expected hex sha256, got %q", in.IndexHash)
	}
	if in.Pages[page] == "" {
		t.Error("page hash missing")
	}

	if _, err := HashInputs(filepath.Join(dir, "absent.json"), nil); err == nil {
		t.Error("expected error for missing index")
	}

	out := HashOutputs(dir, []string{"intro.md", "missing.html"})
	if out["intro.md"] != in.Pages[page] {
		t.Error("output hash should match the input hash of the same file")
	}
	if _, ok := out["missing.html"]; ok {
		t.Error("unreadable outputs should be skipped")
	}
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	if err := sampleManifest().Write(dir); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := FromJSON(data); err != nil {
		t.Fatalf("written manifest unreadable: %v", err)
	}
}

func TestNewRunID(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	if a == b {
		t.Error("run IDs should be unique")
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("run ID is not a UUID: %v", err)
	}
}
