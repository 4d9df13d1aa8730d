// This tool reads a wav file and prints its header. It can also dump the
// raw bytes of the file and export the first channel as float32 values.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	wav "github.com/cwbudde/wavreader"
)

const usageMessage = `WavReader program to read and analyze a WAV file
Usage: wavreader [-ascii] [-hex] [-export path] [-strict] [-v] path/to/wav`

var errUsage = errors.New("expected exactly one wav path")

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errUsage) {
		fmt.Println(usageMessage)
		os.Exit(1)
	}

	log.Fatal(err)
}

func run(args []string, out io.Writer) error {
	flagSet := flag.NewFlagSet("wavreader", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	ascii := flagSet.Bool("ascii", false, "dump the file bytes as ASCII")
	hex := flagSet.Bool("hex", false, "dump the file bytes as hex")
	export := flagSet.String("export", "", "write the first channel as raw float32 to this path")
	strict := flagSet.Bool("strict", false, "reject files with unexpected chunk tags")
	verbose := flagSet.Bool("v", false, "log the passed arguments")

	if err := flagSet.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	if *verbose {
		log.Printf("number of arguments: %d", len(args))

		for i, arg := range args {
			log.Printf("#%d: %s", i, arg)
		}
	}

	if flagSet.NArg() != 1 {
		return errUsage
	}

	in := wav.NewInspector(flagSet.Arg(0))
	in.Strict = *strict

	if err := in.Read(); err != nil {
		return err
	}

	if err := in.PrintInfo(out); err != nil {
		return err
	}

	if *ascii {
		if err := in.DumpASCII(out); err != nil {
			return err
		}
	}

	if *hex {
		if err := in.DumpHex(out); err != nil {
			return err
		}
	}

	if *export != "" {
		if err := in.Export(*export); err != nil {
			return err
		}

		if *verbose {
			log.Printf("exported %d frames to %s", in.Wave().FrameCount(), *export)
		}
	}

	return nil
}
