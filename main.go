package main

import "github.com/notargets/gopn/cmd"

func main() {
	cmd.Execute()
}
