package main

import "errors"

// ErrConfigError indicates a missing or malformed flag; fatal, prints usage.
var ErrConfigError = errors.New("cmd: invalid configuration")
