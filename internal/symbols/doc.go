// Package symbols defines the read-only symbol graph rendered by symdoc.
//
// The graph is produced by an external source-analysis front end and loaded
// once from JSON (see LoadIndex). Nothing in the rendering pipeline mutates an
// Index after it has been loaded; all collections may be shared freely between
// goroutines.
//
// Symbols are kept in separate typed collections keyed by SymbolID. The Kind
// discriminator is only needed where a bare identifier has to be classified,
// which is what Index.KindOf does.
package symbols
