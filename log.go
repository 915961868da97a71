package main

import (
	"fmt"
	"log"
	"os"
)

var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)

func logVerbose(format string, v ...interface{}) {
	if verboseFlag || debugFlag {
		logger.Output(2, fmt.Sprintf(format, v...))
	}
}

func logDebug(format string, v ...interface{}) {
	if debugFlag {
		logger.Output(2, fmt.Sprintf(format, v...))
	}
}
