package main

import "github.com/vkorhonen/alexandria/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
