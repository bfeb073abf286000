package main

import "github.com/battlesnakeio/snake/cmd/snake/commands"

func main() {
	commands.Execute()
}
