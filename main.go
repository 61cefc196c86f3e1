package main

import "github.com/VOLLPilates/assetforge/cmd"

func main() {
	cmd.Execute()
}
