package main

import "github.com/zakkhoyt/linkmark/cmd"

func main() {
	cmd.Execute()
}
