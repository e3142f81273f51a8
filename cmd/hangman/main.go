package main

import (
	"github.com/wordsolver/hangman/internal/cli"
)

func main() {
	cli.Execute()
}
