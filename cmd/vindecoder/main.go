package main

import "vindecoder/cmd/vindecoder/cmd"

func main() {
	cmd.Execute()
}
