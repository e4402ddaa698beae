package main

import "mrgen/cmd"

func main() {
	cmd.Execute()
}
