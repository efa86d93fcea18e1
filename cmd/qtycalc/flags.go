package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"qtycalc/app/lang"
)

// outputFormat is the value of an --output flag.
type outputFormat string

var _ pflag.Value = (*outputFormat)(nil)

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Set(s string) error {
	if err := validateOutput(s); err != nil {
		return err
	}
	*f = outputFormat(s)
	return nil
}

func (f *outputFormat) Type() string { return "format" }

// kindValue is the value of a --kind flag.
type kindValue lang.QuantityKind

var _ pflag.Value = (*kindValue)(nil)

func (k *kindValue) String() string { return strings.ToLower(lang.QuantityKind(*k).String()) }

func (k *kindValue) Set(s string) error {
	kind, ok := lang.ParseQuantityKind(s)
	if !ok {
		return fmt.Errorf("must be one of length, angle, integer, real")
	}
	*k = kindValue(kind)
	return nil
}

func (k *kindValue) Type() string { return "kind" }
