// Copyright © 2026 The golox authors

// Package docs embeds the lox language reference for use by the CLI.
package docs

import _ "embed"

//go:embed lang.md
var LangGuide string
