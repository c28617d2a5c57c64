package main

import (
	"path/filepath"

	petname "github.com/dustinkirkland/golang-petname"
)

// blockName picks the outermost *begin block name: an explicit name, else the
// layer being exported, else the drawing's own name, else the input file's.
// Drawings piped in without a docname get a generated name.
func blockName(name, layer, docname, input string) string {
	switch {
	case name != "":
		return name
	case layer != "":
		return layer
	case docname != "":
		return trimExt(filepath.Base(docname))
	case input != "" && input != "-":
		return trimExt(filepath.Base(input))
	}
	return petname.Generate(2, "-")
}

// sourceName describes where the drawing came from, for the file header.
func sourceName(docname, input string) string {
	if docname != "" {
		return docname
	}
	if input == "-" {
		return "standard input"
	}
	return filepath.Base(input)
}
