package main

import "github.com/nathanhack/radioae/cmd"

func main() {
	cmd.Execute()
}
