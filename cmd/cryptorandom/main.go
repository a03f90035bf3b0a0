package main

import "github.com/statlab/cryptorandom/cmd/cryptorandom/cmd"

func main() {
	cmd.Execute()
}
