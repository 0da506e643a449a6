// Package normalisers provides the document normalisers used by extraction.
// The recipe normaliser turns recipe JSON from any mod into a domain.Recipe.
package normalisers
