package main

import (
	"os"

	"github.com/nguyentantai21042004/yousummarizer/cmd/yousummarizer/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
