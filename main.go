package main

import "github.com/ashn-dot-dev/tart/cmd"

func main() {
	cmd.Execute()
}
