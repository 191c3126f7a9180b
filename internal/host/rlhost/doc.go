// Package rlhost presents headless panels in a raylib window. Every frame
// re-renders the panel and uploads it as one texture.
// Without the raylib build tag the package compiles as a no-op stub.
package rlhost
