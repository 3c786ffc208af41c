package main

import "github.com/limbo/focusflow/cmd/ff/root"

func main() {
	root.Execute()
}
