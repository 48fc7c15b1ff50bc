package main

import "planner/internal/cli"

func main() {
	cli.Execute()
}
