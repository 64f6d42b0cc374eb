// Copyright © 2026 The golox authors

package lox

// Version is the golox release version.
const Version = "0.1.0"
