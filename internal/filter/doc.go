// Package filter decides which template files belong in a generated project.
//
// A Table holds an ordered list of rules, each pairing a file path pattern
// with a boolean expression over the answer set, for example
//
//	src/store/**/*.ts   preset.vuex && preset.typescript
//	src/css/*.scss      css === 'scss'
//
// Expressions are parsed once into a small syntax tree (references, dotted
// multi-select membership, equality against literals, and/or/not) and
// evaluated without side effects. Evaluation never fails: keys that were not
// answered resolve as falsy. Malformed expressions are rejected when the table
// is compiled.
package filter
