package main

import (
	"os"

	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the exit code, the logger is synced before returning.
func run(args []string) int {
	rootCmd := getRootCmd()
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	_ = zap.L().Sync()

	if err != nil {
		return 1
	}
	return 0
}
