package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/sigil/pkg/sigilsdk"
)

// Persistent flags, shared by every subcommand. Defaults come from the
// environment so scripts can omit the flags entirely.
var (
	addr      string
	token     string
	outFormat string // "text" | "json"
)

func newClient() *sigilsdk.Client {
	c := sigilsdk.NewClient(addr)
	c.Token = token
	return c
}

// printJSON renders v as indented JSON on stdout.
func printJSON(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	fmt.Println(string(b))
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	root := &cobra.Command{
		Use:   "sigilctl",
		Short: "Command-line client for the Sigil signing service",
		Long: `sigilctl manages named OpenPGP keys on a Sigil server and produces
and verifies detached signatures with them. Key material never leaves
the server; sigilctl only moves data and signatures over the API.`,
	}

	root.PersistentFlags().StringVar(&addr, "addr", envOr("SIGIL_ADDR", "http://localhost:8080"), "Sigil server address (env SIGIL_ADDR)")
	root.PersistentFlags().StringVar(&token, "token", envOr("SIGIL_API_TOKEN", ""), "API token, if the server requires one (env SIGIL_API_TOKEN)")
	root.PersistentFlags().StringVar(&outFormat, "out", envOr("SIGIL_OUT", "text"), "Output format: text|json")

	root.AddCommand(
		keysCmd(),
		subkeysCmd(),
		signCmd(),
		verifyCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// readInput loads the data to sign or verify. A path of "-" or the empty
// string reads stdin, anything else is a file path.
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}
	return data, nil
}
