package main

import "patchpad/cmd"

func main() {
	cmd.Execute()
}
