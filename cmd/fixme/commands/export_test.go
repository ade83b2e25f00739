package commands

// NewRoot exposes the root command constructor to the package tests.
var NewRoot = newRoot
