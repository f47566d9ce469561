package main

import "github.com/arl/go-hachure/cmd/hachure/cmd"

func main() {
	cmd.Execute()
}
