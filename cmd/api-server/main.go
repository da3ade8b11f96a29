package main

import "newshub/cmd/api-server/command"

func main() {
	command.Execute()
}
