// Package project locates a generated app on disk and reads its descriptor
// (package.json). It resolves the app root by walking up to the nearest
// quasar.conf.js, applies the product defaults for display name and app id,
// and checks the engines.node constraint against an installed Node version.
package project
