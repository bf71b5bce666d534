package main

import "github.com/nfrund/veneer/cmd/veneer-cli/cmd"

func main() {
	cmd.Execute()
}
