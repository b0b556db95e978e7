// Package answers holds the resolved prompt answers for one generation
// session. A Set is built once from the prompt collector (or an answers file)
// and is read-only afterwards; the filter engine and template renderer only
// ever read from it.
package answers
