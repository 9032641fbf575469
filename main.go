package main

import "rosterctl/cmd"

func main() {
	cmd.Execute()
}
