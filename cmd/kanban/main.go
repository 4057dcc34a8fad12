package main

import "kanban/cmd/kanban/commands"

func main() {
	commands.Execute()
}
