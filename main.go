// Copyright © 2026 The golox authors

package main

import "github.com/loxlang/golox/cmd"

func main() {
	cmd.Execute()
}
