package main

import (
	"fmt"
	"os"
)

// Exception Numbers
const (
	FILE_NOT_FOUND int8 = iota + 1
	PROJECT_NOT_FOUND
	WRITE_ERROR
)

var Exps map[int8]string

// Initialize Exceptions Map
func InitExceptions() {
	Exps = make(map[int8]string, 0)
	Exps[FILE_NOT_FOUND] = "settings.kts Not Found At '%s'"
	Exps[PROJECT_NOT_FOUND] = "No project Block Found In '%s'"
	Exps[WRITE_ERROR] = "Cannot Write Output: %s"
}

func RaiseException(exception_number int8, value string, exit bool) {
	fmt.Fprintf(os.Stderr, Exps[exception_number]+"\n", value)
	if exit {
		os.Exit(int(exception_number))
	}
}
