package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

var (
	forceFlag = false

	// stdin is read for overwrite confirmation when it is a terminal.
	stdin io.Reader = os.Stdin
	isTTY           = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)

// openOutputFile creates filename, asking before replacing an existing
// file unless --force was given. Without a terminal to ask on, an
// existing file is left alone and an error returned.
func openOutputFile(filename string) (*os.File, error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !forceFlag {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(filename, flags, 0644)
	if err == nil {
		return f, nil
	}
	if !os.IsExist(err) || forceFlag {
		return nil, err
	}
	if !isTTY() {
		return nil, fmt.Errorf("%s already exists, use --force to overwrite it", filename)
	}
	r := bufio.NewReader(stdin)
	for {
		fmt.Printf("File %v already exists, would you like to overwrite it? [y/N/a]: ", filename)
		line, rerr := r.ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "a":
			forceFlag = true
			fallthrough
		case "y":
			flags &= ^os.O_EXCL
			return os.OpenFile(filename, flags, 0644)
		case "n", "":
			return nil, err
		}
		if rerr != nil {
			return nil, err
		}
	}
}
