package main

import "github.com/wardle/nhsnumber/cmd"

// version is set by the linker e.g. go build -ldflags "-X main.version=v1.0.0"
var version string

func main() {
	cmd.Version = version
	cmd.Execute()
}
