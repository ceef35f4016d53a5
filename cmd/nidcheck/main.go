// Package main provides a CLI for checking national ID numbers against
// the nidx engine without running the HTTP service.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"nidx/pkg/nid"
)

const usage = `Usage:
  nidcheck decode   -country <name> [-json] <code>
  nidcheck validate -country <name> [-json] <code> [<code>...]
  nidcheck countries

Exit status: 0 all codes valid, 1 at least one invalid, 2 usage error.`

type decodeOutput struct {
	Country    string `json:"country"`
	Birthday   string `json:"birthday"`
	Sex        string `json:"sex"`
	IsNational bool   `json:"is_national"`
}

func main() {
	decodeCmd := flag.NewFlagSet("decode", flag.ExitOnError)
	decodeCountry := decodeCmd.String("country", "", "Country selector (albania, kosovo)")
	decodeJSON := decodeCmd.Bool("json", false, "Output as JSON")

	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	validateCountry := validateCmd.String("country", "", "Country selector (albania, kosovo)")
	validateJSON := validateCmd.Bool("json", false, "Output as JSON")

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	switch os.Args[1] {
	case "decode":
		decodeCmd.Parse(os.Args[2:])
		os.Exit(runDecode(*decodeCountry, *decodeJSON, decodeCmd.Args()))
	case "validate":
		validateCmd.Parse(os.Args[2:])
		os.Exit(runValidate(*validateCountry, *validateJSON, validateCmd.Args()))
	case "countries":
		for _, m := range nid.Countries() {
			ops := "validate"
			if m.CanDecode() {
				ops = "decode, validate"
			}
			fmt.Printf("%s (%s)\n", m.Country(), ops)
		}
		os.Exit(0)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
}

func runDecode(country string, asJSON bool, args []string) int {
	mod, ok := requireModule(country)
	if !ok || len(args) != 1 {
		fmt.Fprintln(os.Stderr, usage)
		return 2
	}

	info, err := mod.Decode(args[0])
	if err != nil {
		if errors.Is(err, nid.ErrDecodeNotSupported) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 2
		}
		fmt.Fprintf(os.Stderr, "invalid: %v\n", err)
		return 1
	}

	if asJSON {
		out := decodeOutput{
			Country:    string(info.Country()),
			Birthday:   info.Birthday(),
			Sex:        string(info.Sex()),
			IsNational: info.IsNational(),
		}
		_ = json.NewEncoder(os.Stdout).Encode(out)
		return 0
	}

	fmt.Println(info)
	return 0
}

func runValidate(country string, asJSON bool, args []string) int {
	mod, ok := requireModule(country)
	if !ok || len(args) == 0 {
		fmt.Fprintln(os.Stderr, usage)
		return 2
	}

	status := 0
	for _, code := range args {
		valid := mod.IsValid(code)
		if !valid {
			status = 1
		}
		if asJSON {
			_ = json.NewEncoder(os.Stdout).Encode(map[string]any{"code": code, "valid": valid})
		} else {
			fmt.Printf("%s: %t\n", code, valid)
		}
	}
	return status
}

func requireModule(country string) (*nid.Module, bool) {
	if country == "" {
		return nil, false
	}
	mod, ok := nid.Lookup(country)
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown country %q\n", country)
		return nil, false
	}
	return mod, true
}
