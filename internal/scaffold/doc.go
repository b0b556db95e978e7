// Package scaffold materializes a new project from a blueprint's template
// tree. Every template path is passed through the blueprint's filter table;
// kept files are rendered with text/template using <% %> delimiters so the
// {{ }} mustaches of Vue templates pass through untouched.
package scaffold
