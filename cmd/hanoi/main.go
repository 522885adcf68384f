package main

import "github.com/park285/hanoi-towers/internal/cli"

func main() {
	cli.Execute()
}
