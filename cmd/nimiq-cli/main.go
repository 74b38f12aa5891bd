package main

import "nimiq/cmd/nimiq-cli/cmd"

func main() {
	cmd.Execute()
}
