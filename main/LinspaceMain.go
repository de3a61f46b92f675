package main

import (
	"linspace/common/value"
	"linspace/project"
	"os"
)

func main() {
	value.StaticValue = value.InitValue(os.Stderr)
	value.StaticValue.Debug.Printf("run %s starting", value.StaticValue.RunID)
	if err := project.Main(project.ConfigFile, os.Stdout); err != nil {
		value.StaticValue.Error.Printf("%v", err)
		os.Exit(1)
	}
}
