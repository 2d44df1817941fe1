// Package main provides the entry point for the snapengine CLI application.
package main

import (
	"snapengine/cmd/batch"
	"snapengine/cmd/catalogcmd"
	"snapengine/cmd/classify"
	"snapengine/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(classify.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(catalogcmd.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		root.Log.Fatal(err)
	}
}
