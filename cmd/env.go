package cmd

import (
	"github.com/go-imsto/imbench/config"
)

var cmdEnv = &Command{
	UsageLine: "env",
	Short:     "print the supported environment variables",
	Long: `
Print the IMBENCH_* variables with their types and defaults.
`,
}

func init() {
	cmdEnv.Run = runEnv
}

func runEnv(args []string) bool {
	if err := config.Usage(); err != nil {
		errorf("%s", err)
		setExitStatus(1)
	}
	return true
}
