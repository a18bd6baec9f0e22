package main

import "github.com/lepinkainen/moviefav/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
