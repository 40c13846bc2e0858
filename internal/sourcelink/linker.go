package sourcelink

import (
	"path"
	"path/filepath"
	"strconv"
	"strings"
)

// Linker turns declaration locations into display text and URLs. The zero
// value produces display text only.
type Linker struct {
	RepoURL    string
	Branch     string
	SourceRoot string
	Forge      Forge
}

// Enabled reports whether locations get links.
func (l Linker) Enabled() bool {
	return l.RepoURL != "" && l.Branch != ""
}

// Location returns the "file:line" text for a declaration and, when linking
// is enabled and file lies inside the source root, its web UI URL.
func (l Linker) Location(file string, line int) (display, href string) {
	rel, inside := l.relative(file)
	display = rel + ":" + strconv.Itoa(line)
	if !l.Enabled() || !inside {
		return display, ""
	}
	forge := l.Forge
	if forge == "" {
		forge = DetectForge(l.RepoURL)
	}
	return display, BlobURL(forge, l.RepoURL, l.Branch, rel, line)
}

// relative maps file into the repository. Relative inputs are taken as
// repository relative already.
func (l Linker) relative(file string) (string, bool) {
	slashed := filepath.ToSlash(file)
	if !filepath.IsAbs(file) {
		cleaned := path.Clean(slashed)
		return cleaned, !strings.HasPrefix(cleaned, "../")
	}
	if l.SourceRoot == "" {
		return slashed, false
	}
	rel, err := filepath.Rel(l.SourceRoot, file)
	if err != nil {
		return slashed, false
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return slashed, false
	}
	return rel, true
}
