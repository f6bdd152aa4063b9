package main

import (
	"fmt"
	"os"

	"github.com/muhammadchandra19/limit-orderbook/pkg/config"
)

func main() {
	cfg := &config.Config{}
	if err := config.Load(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
