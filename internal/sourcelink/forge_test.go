package sourcelink

import (
	"testing"
)

func TestBlobURL(t *testing.T) {
	tests := []struct {
		name    string
		forge   Forge
		repoURL string
		branch  string
		file    string
		line    int
		want    string
	}{
		{"GitHub", ForgeGitHub, "https://github.com/org/repo", "main", "include/widget.h", 12, "https://github.com/org/repo/blob/main/include/widget.h#L12"},
		{"GitHub trims trailing slash", ForgeGitHub, "https://github.com/org/repo/", "dev", "a.h", 1, "https://github.com/org/repo/blob/dev/a.h#L1"},
		{"GitLab", ForgeGitLab, "https://gitlab.example.com/group/sub/repo", "main", "src/a.cpp", 7, "https://gitlab.example.com/group/sub/repo/-/blob/main/src/a.cpp#L7"},
		{"Forgejo", ForgeForgejo, "https://codeberg.org/team/project", "feature/x", "lib/b.hpp", 3, "https://codeberg.org/team/project/src/branch/feature/x/lib/b.hpp#L3"},
		{"Bitbucket", ForgeBitbucket, "https://bitbucket.org/team/repo", "main", "c.h", 9, "https://bitbucket.org/team/repo/src/main/c.h#lines-9"},
		{"no line", ForgeGitHub, "https://github.com/org/repo", "main", "a.h", 0, "https://github.com/org/repo/blob/main/a.h"},
		{"missing branch", ForgeGitHub, "https://github.com/org/repo", "", "a.h", 1, ""},
		{"missing repo", ForgeGitHub, "", "main", "a.h", 1, ""},
		{"missing file", ForgeGitHub, "https://github.com/org/repo", "main", "", 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BlobURL(tt.forge, tt.repoURL, tt.branch, tt.file, tt.line); got != tt.want {
				t.Errorf("BlobURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectForge(t *testing.T) {
	tests := map[string]Forge{
		"https://github.com/org/repo":        ForgeGitHub,
		"https://gitlab.com/org/repo":        ForgeGitLab,
		"https://git.example.com/org/repo":   ForgeGitHub,
		"https://codeberg.org/org/repo":      ForgeForgejo,
		"https://bitbucket.org/team/repo":    ForgeBitbucket,
		"https://forgejo.example.net/a/repo": ForgeForgejo,
		"::not a url":                        ForgeGitHub,
	}
	for in, want := range tests {
		if got := DetectForge(in); got != want {
			t.Errorf("DetectForge(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseForge(t *testing.T) {
	if f, err := ParseForge(" GitLab "); err != nil || f != ForgeGitLab {
		t.Fatalf("ParseForge = %q, %v", f, err)
	}
	if f, err := ParseForge("gitea"); err != nil || f != ForgeForgejo {
		t.Fatalf("ParseForge(gitea) = %q, %v", f, err)
	}
	if f, err := ParseForge(""); err != nil || f != "" {
		t.Fatalf("ParseForge(empty) = %q, %v", f, err)
	}
	if _, err := ParseForge("sourcehut"); err == nil {
		t.Fatal("expected error for unknown forge")
	}
}
