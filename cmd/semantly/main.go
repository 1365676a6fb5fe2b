package main

import "github.com/mcoot/semantly-go/internal/cli"

func main() {
	cli.Execute()
}
