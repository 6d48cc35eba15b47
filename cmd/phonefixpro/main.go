package main

import "github.com/phonefixpro/site/internal/cli"

func main() {
	cli.Execute()
}
