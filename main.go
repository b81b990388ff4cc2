package main

import "github.com/octoberswimmer/compdb/cmd"

func main() {
	cmd.Execute()
}
