package main

import "github.com/they4kman/gosweep-server/cmd"

func main() {
	cmd.Execute()
}
