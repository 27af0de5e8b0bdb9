package main

import (
	"fmt"
	"os"

	"github.com/srad-secure/srad-backend-go/internal/cli"
)

const version = "v1.0.0"

func main() {
	if err := cli.RootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
