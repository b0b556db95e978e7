// Package blueprint loads the static description of a project generator: the
// ordered prompt catalog whose answers form the answer set, and the filter
// rules that decide which template files are emitted. Blueprints are YAML
// documents validated against an embedded JSON Schema; the default app
// blueprint is embedded in the binary and compiled once on first use.
package blueprint
