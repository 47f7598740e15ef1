package main

import "github.com/betalabs/feedback-intake/internal/cli"

func main() {
	cli.Execute()
}
