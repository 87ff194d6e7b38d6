package main

import "github.com/rdetools/gorde/cmd"

func main() {
	cmd.Execute()
}
