package main

import "accesstrack/cmd/accesstrack-cli/cmd"

func main() {
	cmd.Execute()
}
