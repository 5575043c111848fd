package main

import "github.com/mj1618/workspace-output/cmd"

func main() {
	cmd.Execute()
}
