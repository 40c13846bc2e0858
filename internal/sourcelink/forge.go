// Package sourcelink builds the "Declared at" links that point from a
// documented symbol to its declaration in the repository web UI.
package sourcelink

import (
	"fmt"
	"net/url"
	"strings"

	"git.home.luguber.info/inful/symdoc/internal/foundation/normalization"
)

// Forge identifies the web UI flavour hosting the repository.
type Forge string

const (
	ForgeGitHub    Forge = "github"
	ForgeGitLab    Forge = "gitlab"
	ForgeForgejo   Forge = "forgejo"
	ForgeBitbucket Forge = "bitbucket"
)

var forgeNormalizer = normalization.NewEnumNormalizer("forge", map[string]Forge{
	"github":    ForgeGitHub,
	"gitlab":    ForgeGitLab,
	"forgejo":   ForgeForgejo,
	"gitea":     ForgeForgejo,
	"bitbucket": ForgeBitbucket,
}, "")

// ParseForge validates a configured forge name. The empty string selects
// auto-detection and is returned unchanged.
func ParseForge(raw string) (Forge, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	return forgeNormalizer.NormalizeWithValidation(raw)
}

// ForgeNames lists the accepted forge names.
func ForgeNames() []string {
	return forgeNormalizer.ValidValues()
}

// DetectForge guesses the forge from the repository host, falling back to
// GitHub URL shapes which most self-hosted forges also understand.
func DetectForge(repoURL string) Forge {
	u, err := url.Parse(repoURL)
	if err != nil {
		return ForgeGitHub
	}
	host := strings.ToLower(u.Hostname())
	switch {
	case strings.Contains(host, "gitlab"):
		return ForgeGitLab
	case strings.Contains(host, "bitbucket"):
		return ForgeBitbucket
	case strings.Contains(host, "codeberg"), strings.Contains(host, "forgejo"), strings.Contains(host, "gitea"):
		return ForgeForgejo
	default:
		return ForgeGitHub
	}
}

// BlobURL constructs a web UI URL for line of file at branch. file must be
// repository relative with forward slashes. It returns the empty string when
// any input is missing.
func BlobURL(forge Forge, repoURL, branch, file string, line int) string {
	if repoURL == "" || branch == "" || file == "" {
		return ""
	}
	base := strings.TrimSuffix(repoURL, "/")
	file = strings.TrimPrefix(file, "/")

	var out string
	switch forge {
	case ForgeGitLab:
		out = fmt.Sprintf("%s/-/blob/%s/%s", base, branch, file)
	case ForgeForgejo:
		out = fmt.Sprintf("%s/src/branch/%s/%s", base, branch, file)
	case ForgeBitbucket:
		out = fmt.Sprintf("%s/src/%s/%s", base, branch, file)
		if line > 0 {
			out += fmt.Sprintf("#lines-%d", line)
		}
		return out
	default:
		out = fmt.Sprintf("%s/blob/%s/%s", base, branch, file)
	}
	if line > 0 {
		out += fmt.Sprintf("#L%d", line)
	}
	return out
}
