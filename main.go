package main

import "github.com/chukul/mfaws/cmd"

func main() {
	cmd.Execute()
}
