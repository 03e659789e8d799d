package main

import (
	"github.com/carbocation/snpscan/compileinfo"
	"github.com/carbocation/snpscan/snp"
)

// Global is loaded once at startup and only read afterward, so handlers
// share it without locking.
type Global struct {
	log logger

	Site        string
	Source      string
	BuildInfo   compileinfo.CompileInfo
	SequenceIDs []string
	Collection  snp.Collection
}

type logger interface {
	Print(v ...interface{})
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}
