package main

import "github.com/dccsillag/tap/cmd"

func main() {
	cmd.Execute()
}
