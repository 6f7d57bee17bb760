package main

import "github.com/epubforge/epubforge/cmd/epubforge/commands"

func main() {
	commands.Execute()
}
