// A utility to generate or inspect IDs.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ezid-go/ezid"
)

func main() {
	count := 1
	prefix := ""
	flag.IntVar(&count, "c", count, "Generate N-count IDs")
	flag.StringVar(&prefix, "p", prefix, "Prefix generated IDs (at most 32 bytes)")
	flag.Usage = func() {
		fmt.Printf("Usage: ezid\n\n")
		fmt.Printf("Options:\n")
		fmt.Printf("  ezid user_1tSm9Y4xdg2spTOXaYTIRiUDyTg3\tDecode the supplied ID\n")
		fmt.Printf("  ezid -c N\t\t\t\tGenerate N IDs, default: 1\n")
		fmt.Printf("  ezid -p user\t\t\t\tPrefix generated IDs\n\n")
		fmt.Printf("With no parameters, ezid generates 1 random un-prefixed ID.\n")
		fmt.Printf("Generate and inspect 4 IDs using Linux/Unix command substitution:\n")
		fmt.Printf("  ezid `ezid -p user -c 4`\n")
	}
	flag.Parse()
	args := flag.Args()

	if count > 1 && len(args) > 0 {
		fmt.Fprintf(flag.CommandLine.Output(),
			"ezid: Error, cannot generate ID(s) and inspect at the same time. Use command substitution.\n")
		flag.Usage()
		os.Exit(1)
	}

	if len(args) > 0 {
		// attempt to decode each argument as an ezid
		for _, arg := range args {
			id, err := ezid.FromString(arg)
			if err != nil {
				fmt.Printf("[%s] %s\n", arg, err)
				continue
			}
			rnd := id.Random()
			fmt.Printf("%s prefix:%q ts:%d %s rnd:[%s ]\n", arg,
				id.Prefix(), id.Timestamp(), id.Time().UTC(), asHex(rnd[:]))
		}
		return
	}

	// generate one or -c N ids
	for c := 1; c <= count; c++ {
		var (
			id  ezid.ID
			err error
		)
		if prefix != "" {
			id, err = ezid.New(prefix)
		} else {
			id = ezid.NewBuilder().Build()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "ezid: %s\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stdout, "%s\n", id)
	}
}

func asHex(b []byte) string {
	s := []string{}
	for _, v := range b {
		s = append(s, fmt.Sprintf(" %#02x", v))
	}
	return strings.Join(s, ",")
}
