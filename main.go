package main

import "github.com/notargets/gosurf/cmd"

func main() {
	cmd.Execute()
}
