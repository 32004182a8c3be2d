// Package main is the entry point for the camelize CLI.
package main

import "camelize.dev/pkg/camelize/cmd"

func main() {
	cmd.Execute()
}
