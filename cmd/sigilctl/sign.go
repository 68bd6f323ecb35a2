package main

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/sigil/pkg/sigilsdk"
)

// signCmd builds the "sign" command. Input is read from a file or stdin
// and base64-encoded on the wire; the resulting detached signature goes
// to stdout so it can be redirected straight into a .sig file.
func signCmd() *cobra.Command {
	var (
		hashAlgorithm       string
		marshalingAlgorithm string
		expires             int
	)
	cmd := &cobra.Command{
		Use:   "sign <key-name> [file]",
		Short: "Produce a detached signature over a file or stdin",
		Long: `Signs the given file (or stdin when the file is omitted or "-") with
the named key and prints the detached signature. With subkeys present,
the newest live subkey signs; otherwise the master key does.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var file string
			if len(args) > 1 {
				file = args[1]
			}
			data, err := readInput(file)
			if err != nil {
				return err
			}

			req := sigilsdk.SignRequest{
				Input:               base64.StdEncoding.EncodeToString(data),
				HashAlgorithm:       hashAlgorithm,
				MarshalingAlgorithm: marshalingAlgorithm,
				Expires:             expires,
			}
			sig, err := newClient().Sign(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			if outFormat == "json" {
				printJSON(sig)
				return nil
			}
			fmt.Println(sig.Signature)
			return nil
		},
	}
	cmd.Flags().StringVar(&hashAlgorithm, "hash", "", "Hash algorithm: sha2-224|sha2-256|sha2-384|sha2-512 (default sha2-256)")
	cmd.Flags().StringVar(&marshalingAlgorithm, "marshaling", "", "Signature encoding: ascii-armor|base64 (default ascii-armor)")
	cmd.Flags().IntVar(&expires, "expires", 0, "Signature validity in seconds, 0 to expire only with the key")
	return cmd
}

// verifyCmd builds the "verify" command. The verdict goes to stdout and
// the exit code follows it, so scripts can gate on the command directly.
func verifyCmd() *cobra.Command {
	var (
		signature           string
		signatureFile       string
		hashAlgorithm       string
		marshalingAlgorithm string
	)
	cmd := &cobra.Command{
		Use:   "verify <key-name> [file]",
		Short: "Verify a detached signature over a file or stdin",
		Long: `Checks a detached signature against the given file (or stdin) using
the named key. Prints "valid" or "invalid" and exits non-zero when the
signature does not check out. A signature is invalid if it was forged,
if its key or subkey has been deleted or has expired, or if the
signature's own validity window has passed.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if signature == "" && signatureFile == "" {
				return fmt.Errorf("one of --signature or --signature-file is required")
			}
			if signature == "" {
				b, err := os.ReadFile(signatureFile)
				if err != nil {
					return fmt.Errorf("read signature file: %w", err)
				}
				signature = string(b)
			}

			var file string
			if len(args) > 1 {
				file = args[1]
			}
			data, err := readInput(file)
			if err != nil {
				return err
			}

			req := sigilsdk.VerifyRequest{
				Input:               base64.StdEncoding.EncodeToString(data),
				Signature:           signature,
				HashAlgorithm:       hashAlgorithm,
				MarshalingAlgorithm: marshalingAlgorithm,
			}
			verdict, err := newClient().Verify(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			if outFormat == "json" {
				printJSON(verdict)
			} else if verdict.Valid {
				fmt.Println("valid")
			} else {
				fmt.Println("invalid")
			}
			if !verdict.Valid {
				os.Exit(1)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&signature, "signature", "", "Detached signature as produced by sign")
	cmd.Flags().StringVar(&signatureFile, "signature-file", "", "File holding the detached signature")
	cmd.Flags().StringVar(&hashAlgorithm, "hash", "", "Hash algorithm the signature must have used")
	cmd.Flags().StringVar(&marshalingAlgorithm, "marshaling", "", "Encoding the signature must be in")
	return cmd
}
