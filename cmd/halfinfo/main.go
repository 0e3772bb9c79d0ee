// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command halfinfo reports the half-precision capabilities of the current
// machine and inspects Float16 and BFloat16 values and tensor files.
//
// Usage:
//
//	halfinfo                              # dispatch policy and backend
//	halfinfo -value 1.5 -format bf16      # encode a decimal value
//	halfinfo -bits 0x3c00                 # decode a bit pattern
//	halfinfo -tensors model.safetensors   # summarize F16/BF16/F32 tensors
//
// Set HALF_NO_SIMD=1 to see the software fallback.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/ajroetker/go-half/half"
	"github.com/ajroetker/go-half/half/contrib/tensorio"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			slog.Error("halfinfo", "err", err)
		}
		os.Exit(1)
	}
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})))
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("halfinfo", flag.ContinueOnError)
	value := fs.String("value", "", "Decimal or hex float to encode")
	bits := fs.String("bits", "", "Bit pattern to decode, e.g. 0x3c00")
	format := fs.String("format", "f16", "Half format: f16 or bf16")
	tensors := fs.String("tensors", "", "safetensors file to summarize")
	verbose := fs.Bool("v", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	setupLogging(*verbose)

	switch {
	case *tensors != "":
		return summarizeTensors(stdout, *tensors)
	case *value != "":
		return encodeValue(stdout, *value, *format)
	case *bits != "":
		return decodeBits(stdout, *bits, *format)
	default:
		return printCapabilities(stdout)
	}
}

func printCapabilities(w io.Writer) error {
	caps := half.Detect()
	slog.Debug("detect", "caps", caps.String())
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "policy:\t%s\n", caps.Policy)
	fmt.Fprintf(tw, "f16c:\t%v\n", caps.F16C)
	fmt.Fprintf(tw, "fp16:\t%v\n", caps.FP16)
	fmt.Fprintf(tw, "no-simd:\t%v\n", caps.NoSimd)
	fmt.Fprintf(tw, "backend:\t%s\n", half.ActiveBackend())
	fmt.Fprintf(tw, "native arithmetic:\t%v\n", half.HasNativeArithmetic())
	return tw.Flush()
}

func encodeValue(w io.Writer, s, format string) error {
	switch format {
	case "f16":
		h, err := half.ParseFloat16(s)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s -> f16 0x%04X = %s (%s)\n", s, h.Bits(), h, h.Classify())
		return err
	case "bf16":
		b, err := half.ParseBFloat16(s)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s -> bf16 0x%04X = %s (%s)\n", s, b.Bits(), b, b.Classify())
		return err
	default:
		return fmt.Errorf("unknown format %q, want f16 or bf16", format)
	}
}

func decodeBits(w io.Writer, s, format string) error {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return fmt.Errorf("invalid bit pattern: %w", err)
	}
	switch format {
	case "f16":
		h := half.Float16FromBits(uint16(v))
		_, err = fmt.Fprintf(w, "f16 0x%04X = %s (%s)\n", h.Bits(), h, h.Classify())
	case "bf16":
		b := half.BFloat16FromBits(uint16(v))
		_, err = fmt.Fprintf(w, "bf16 0x%04X = %s (%s)\n", b.Bits(), b, b.Classify())
	default:
		err = fmt.Errorf("unknown format %q, want f16 or bf16", format)
	}
	return err
}

func summarizeTensors(w io.Writer, name string) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	tensors, skipped, err := tensorio.Read(data)
	if err != nil {
		return err
	}
	slog.Debug("tensors", "file", name, "decoded", len(tensors), "skipped", len(skipped))
	for _, n := range skipped {
		slog.Info("skipping tensor", "name", n)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDTYPE\tSHAPE\tMIN\tMAX\tNAN\tINF")
	for _, t := range tensors {
		s := tensorio.Summarize(t.Values)
		fmt.Fprintf(tw, "%s\t%s\t%v\t%g\t%g\t%d\t%d\n", t.Name, t.DType, t.Shape, s.Min, s.Max, s.NaNs, s.Infs)
	}
	return tw.Flush()
}
