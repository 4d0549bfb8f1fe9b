package main

import "gotouch/cmd"

func main() {
	cmd.Execute()
}
