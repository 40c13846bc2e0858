package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"git.home.luguber.info/inful/symdoc/internal/htmlpage"
	"git.home.luguber.info/inful/symdoc/internal/logfields"
	"git.home.luguber.info/inful/symdoc/internal/metrics"
	"git.home.luguber.info/inful/symdoc/internal/symbols"
)

const (
	collectionSearch = "search"
	searchIndexFile  = "index.json"
)

// SearchKind is the type code of an index.json entry. The codes are read by
// search.js and must not change.
type SearchKind int

const (
	SearchMemberFunction SearchKind = iota
	SearchFreeFunction
	SearchStruct
	SearchClass
	SearchOtherRecord
	SearchEnum
	SearchEnumMember
)

// SearchEntry is one element of index.json.
type SearchEntry struct {
	SID  string     `json:"sid"`
	Name string     `json:"name"`
	Decl string     `json:"decl"`
	Type SearchKind `json:"type"`
}

const noscriptText = `Search requires Javascript to be enabled.
No data leaves your machine as part of the search process.
The Javascript code is not minified so that you are able to inspect it yourself should you choose to do so.`

func (r *Renderer) renderSearch(ctx context.Context) {
	r.runCollection(ctx, collectionSearch, func(pool *pagePool) htmlpage.Page {
		pool.group.Go(func() error {
			r.writeSearchIndex(ctx)
			return nil
		})
		return r.searchPage()
	})
}

func (r *Renderer) searchPage() htmlpage.Page {
	main := htmlpage.Append(htmlpage.Elem("main"),
		htmlpage.Tag("h1", "Search"),
		htmlpage.Append(htmlpage.Elem("noscript"), htmlpage.Tag("p", noscriptText)),
		htmlpage.Elem("input",
			htmlpage.Attr("class", "input is-primary"),
			htmlpage.Attr("id", "search"),
			htmlpage.Attr("type", "search"),
			htmlpage.Attr("autocomplete", "off"),
			htmlpage.Attr("onkeyup", "updateSearchResults()"),
			htmlpage.Attr("style", "display: none")),
		htmlpage.Append(htmlpage.Elem("div", htmlpage.Attr("id", "loader")), htmlpage.Classed("span", "loader")),
		htmlpage.Tag("p", "Loading index of all symbols. This may take time for large codebases.", htmlpage.Attr("id", "info")),
		htmlpage.Elem("div",
			htmlpage.Attr("class", "panel is-hoverable"),
			htmlpage.Attr("id", "results"),
			htmlpage.Attr("style", "display: none")),
		htmlpage.Elem("script", htmlpage.Attr("src", "search.js")),
	)
	return htmlpage.Page{
		Path:     "search.html",
		Title:    r.title("Search"),
		Main:     main,
		TopLevel: true,
	}
}

func (r *Renderer) writeSearchIndex(ctx context.Context) {
	data, err := EncodeSearchIndex(SearchEntries(r.index))
	if err == nil {
		err = htmlpage.WriteFile(r.opts.OutputDir, searchIndexFile, data)
	}
	if err != nil {
		r.recorder.IncPage(collectionSearch, metrics.PageFailed)
		r.report.addFailure()
		r.warn(ctx, reasonPageFailed, "Search index could not be written",
			logfields.Path(searchIndexFile), logfields.Error(err))
		return
	}
	r.recorder.AddBytesWritten(len(data))
	r.report.addFile(searchIndexFile, len(data))
}

// SearchEntries lists every function, record, enum and enumerator of ix.
// Each collection is ordered by id so identical input gives identical output.
// Record members and hidden friends point into their record's page.
func SearchEntries(ix *symbols.Index) []SearchEntry {
	var out []SearchEntry

	functions := ix.FunctionIDs()
	slices.Sort(functions)
	for _, id := range functions {
		f := ix.Functions[id]
		e := SearchEntry{SID: f.ID.String(), Name: f.Name, Decl: f.Proto, Type: SearchFreeFunction}
		if f.IsRecordMember || f.IsHiddenFriend {
			e.SID = f.ParentID.String() + ".html#" + f.ID.String()
			e.Type = SearchMemberFunction
		}
		out = append(out, e)
	}

	records := ix.RecordIDs()
	slices.Sort(records)
	for _, id := range records {
		rec := ix.Records[id]
		out = append(out, SearchEntry{SID: rec.ID.String(), Name: rec.Name, Decl: rec.Proto, Type: recordSearchKind(rec.Type)})
	}

	enums := ix.EnumIDs()
	slices.Sort(enums)
	for _, id := range enums {
		e := ix.Enums[id]
		out = append(out, SearchEntry{SID: e.ID.String(), Name: e.Name, Decl: e.Name, Type: SearchEnum})
		for _, m := range e.Members {
			out = append(out, SearchEntry{SID: e.ID.String(), Name: m.Name, Decl: e.Name + "::" + m.Name, Type: SearchEnumMember})
		}
	}
	return out
}

func recordSearchKind(recordType string) SearchKind {
	switch recordType {
	case "struct":
		return SearchStruct
	case "class":
		return SearchClass
	default:
		return SearchOtherRecord
	}
}

// EncodeSearchIndex serialises entries as a JSON array. HTML characters in
// declarations are kept as they are.
func EncodeSearchIndex(entries []SearchEntry) ([]byte, error) {
	if entries == nil {
		entries = []SearchEntry{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(entries); err != nil {
		return nil, fmt.Errorf("encode search index: %w", err)
	}
	return buf.Bytes(), nil
}
