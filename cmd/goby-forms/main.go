package main

import "github.com/nfrund/goby-forms/cmd/goby-forms/cmd"

func main() {
	cmd.Execute()
}
