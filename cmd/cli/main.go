package main

import "jobhunter/internal/cli"

func main() {
	cli.Execute()
}
