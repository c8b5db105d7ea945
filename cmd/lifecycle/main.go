package main

import "github.com/osa911/lifecycle/internal/cli"

func main() {
	cli.Execute()
}
