// Package install runs the package manager in a freshly generated project.
package install
