package main

import "github.com/auranode/auranode/internal/cli"

func main() {
	cli.Execute()
}
