package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/podmerge/cmd/podmerge"
	"github.com/arthur-debert/podmerge/pkg/style"
)

func main() {
	rootCmd := podmerge.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.RenderError(err))
		os.Exit(1)
	}
}
