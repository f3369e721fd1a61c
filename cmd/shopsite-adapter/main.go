// Package main is the entry point for the shopsite-adapter.
package main

import (
	"github.com/donaldgifford/shopsite-adapter/cmd/shopsite-adapter/cmd"
)

func main() {
	cmd.Execute()
}
