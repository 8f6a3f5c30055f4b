// Package http exposes the catalog as a JSON API on a chi router.
//
// Every factory endpoint takes a small selection body and answers with a
// creational.Outcome. Unknown selectors are 400 responses listing the
// accepted options; unknown templates are 404.
package http
