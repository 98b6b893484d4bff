package main

import "testpilot/internal/cli"

func main() {
	cli.Execute()
}
