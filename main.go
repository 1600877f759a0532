package main

import "github.com/massigy/routenet/cmd"

func main() {
	cmd.Execute()
}
