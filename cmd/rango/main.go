package main

import (
	"github.com/bornholm/rango/internal/command"
	"github.com/bornholm/rango/internal/command/search"
)

var version = "dev"

func main() {
	command.Main(
		"rango", version,
		"Search the web for pages to add to the Rango directory",
		search.Search(),
	)
}
