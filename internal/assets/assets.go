// Package assets bundles the static files every generated site needs.
package assets

import (
	_ "embed"

	"git.home.luguber.info/inful/symdoc/internal/htmlpage"
)

//go:embed files/styles.css
var stylesCSS []byte

//go:embed files/search.js
var searchJS []byte

//go:embed files/favicon.svg
var faviconSVG []byte

// StaticAsset is a file copied verbatim into the output directory.
type StaticAsset struct {
	Path    string // relative to the output root, e.g. "styles.css"
	Content []byte
}

// Bundled returns the assets in the order they are written.
func Bundled() []StaticAsset {
	return []StaticAsset{
		{Path: "styles.css", Content: stylesCSS},
		{Path: "search.js", Content: searchJS},
		{Path: "favicon.svg", Content: faviconSVG},
	}
}

// Write copies every bundled asset into dir and returns the bytes written.
func Write(dir string) (int, error) {
	total := 0
	for _, a := range Bundled() {
		if err := htmlpage.WriteFile(dir, a.Path, a.Content); err != nil {
			return total, err
		}
		total += len(a.Content)
	}
	return total, nil
}
