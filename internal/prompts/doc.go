// Package prompts collects an answers.Set from a blueprint prompt catalog,
// either interactively or from defaults and an answers file.
package prompts
