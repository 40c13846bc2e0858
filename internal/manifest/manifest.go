// Package manifest records what a render consumed and produced in
// manifest.json next to the generated site.
package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// FileName is the name of the manifest inside the output directory.
const FileName = "manifest.json"

// RunManifest is a complete record of one render's inputs, settings and
// outputs.
type RunManifest struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Generator string    `json:"generator"`
	Inputs    Inputs    `json:"inputs"`
	Settings  Settings  `json:"settings"`
	Outputs   Outputs   `json:"outputs"`
	Status    string    `json:"status"`
	Duration  int64     `json:"duration_ms"`
}

// Inputs captures the files a render read.
type Inputs struct {
	IndexHash string            `json:"index_hash"`
	Pages     map[string]string `json:"pages,omitempty"`
}

// Settings summarises the configuration that shaped the output.
type Settings struct {
	Project             string `json:"project"`
	ProjectVersion      string `json:"project_version,omitempty"`
	RepositoryURL       string `json:"repository_url,omitempty"`
	Branch              string `json:"branch,omitempty"`
	Minimal             bool   `json:"minimal"`
	InheritanceDiagrams bool   `json:"inheritance_diagrams"`
	Workers             int    `json:"workers"`
}

// Outputs captures the generated site.
type Outputs struct {
	Pages          map[string]int    `json:"pages"`
	Failed         int               `json:"failed"`
	Warnings       map[string]int    `json:"warnings,omitempty"`
	Bytes          int64             `json:"bytes"`
	ArtifactHashes map[string]string `json:"artifact_hashes,omitempty"`
}

// NewRunID returns a fresh identifier for a render run.
func NewRunID() string {
	return uuid.NewString()
}

// ToJSON serializes the manifest to JSON.
func (m *RunManifest) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	return data, nil
}

// FromJSON deserializes a manifest from JSON.
func FromJSON(data []byte) (*RunManifest, error) {
	var m RunManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}
	return &m, nil
}

// Write stores the manifest as manifest.json in dir.
func (m *RunManifest) Write(dir string) error {
	data, err := m.ToJSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Hash computes a deterministic hash of the manifest's inputs and settings.
// Two runs with the same hash produce the same site apart from the footer
// timestamp.
func (m *RunManifest) Hash() (string, error) {
	hashInput := struct {
		Generator string   `json:"generator"`
		Inputs    Inputs   `json:"inputs"`
		Settings  Settings `json:"settings"`
	}{
		Generator: m.Generator,
		Inputs:    m.Inputs,
		Settings:  m.Settings,
	}

	data, err := json.Marshal(hashInput)
	if err != nil {
		return "", fmt.Errorf("marshal for hash: %w", err)
	}

	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}

// HashFile returns the hex SHA-256 of the file at path.
func HashFile(path string) (string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashInputs hashes the index and every markdown page. Pages are keyed by
// their path as given.
func HashInputs(index string, pages []string) (Inputs, error) {
	var in Inputs
	var err error
	if in.IndexHash, err = HashFile(index); err != nil {
		return in, err
	}
	for _, p := range pages {
		sum, err := HashFile(p)
		if err != nil {
			return in, err
		}
		if in.Pages == nil {
			in.Pages = make(map[string]string, len(pages))
		}
		in.Pages[p] = sum
	}
	return in, nil
}

// HashOutputs hashes the given files relative to dir. Files that cannot be
// read are left out.
func HashOutputs(dir string, files []string) map[string]string {
	out := make(map[string]string, len(files))
	for _, f := range files {
		if sum, err := HashFile(filepath.Join(dir, filepath.FromSlash(f))); err == nil {
			out[f] = sum
		}
	}
	return out
}
