package main

import "github.com/awrigley/markwright/cmd"

func main() {
	cmd.Execute()
}
