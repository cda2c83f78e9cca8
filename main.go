package main

import "github.com/vanitygit/vanitygit/cmd"

func main() {
	cmd.Execute()
}
