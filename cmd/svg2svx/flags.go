package main

import (
	"strconv"

	"gopkg.in/alecthomas/kingpin.v2"
)

// Flags that can be left unset, so a defaults file can supply the value
// instead of a built-in default.

type optionalFloat struct {
	value float64
	set   bool
}

func (f *optionalFloat) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	f.value, f.set = v, true
	return nil
}

func (f *optionalFloat) String() string {
	if !f.set {
		return ""
	}
	return strconv.FormatFloat(f.value, 'g', -1, 64)
}

func (f *optionalFloat) apply(dst *float64) {
	if f.set {
		*dst = f.value
	}
}

type optionalString struct {
	value string
	set   bool
}

func (s *optionalString) Set(v string) error {
	s.value, s.set = v, true
	return nil
}

func (s *optionalString) String() string {
	return s.value
}

func (s *optionalString) apply(dst *string) {
	if s.set {
		*dst = s.value
	}
}

func floatFlag(clause *kingpin.FlagClause) *optionalFloat {
	f := &optionalFloat{}
	clause.SetValue(f)
	return f
}

func stringFlag(clause *kingpin.FlagClause) *optionalString {
	s := &optionalString{}
	clause.SetValue(s)
	return s
}
