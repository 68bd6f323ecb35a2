package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/sigil/pkg/sigilsdk"
)

// keysCmd builds the "keys" command group: master key lifecycle plus
// private-key export.
func keysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage named master keys",
	}
	cmd.AddCommand(
		keysCreateCmd(),
		keysReadCmd(),
		keysListCmd(),
		keysDeleteCmd(),
		keysExportCmd(),
	)
	return cmd
}

func keysCreateCmd() *cobra.Command {
	var (
		keyType    string
		exportable bool
		realName   string
		email      string
		expires    int
	)
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Generate a new named keypair",
		Long: `Generates a keypair on the server under the given name. The private
key stays on the server and can only be exported later if --exportable
was set at creation time.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := sigilsdk.CreateKeyRequest{
				KeyType:    keyType,
				Exportable: exportable,
				RealName:   realName,
				Email:      email,
				Expires:    expires,
			}
			if err := newClient().CreateKey(cmd.Context(), args[0], req); err != nil {
				return err
			}
			if outFormat == "json" {
				printJSON(map[string]string{"name": args[0]})
				return nil
			}
			fmt.Printf("created key %q\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&keyType, "type", "", "Key algorithm: rsa-2048|rsa-4096|ecc-p256|ed25519 (default rsa-4096)")
	cmd.Flags().BoolVar(&exportable, "exportable", false, "Allow the private key to be exported later")
	cmd.Flags().StringVar(&realName, "real-name", "", "Real name for the key's user ID")
	cmd.Flags().StringVar(&email, "email", "", "Email for the key's user ID")
	cmd.Flags().IntVar(&expires, "expires", 0, "Key validity in seconds, 0 for no expiry")
	return cmd
}

func keysReadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read <name>",
		Short: "Show a key's fingerprint and public keyring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := newClient().ReadKey(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if outFormat == "json" {
				printJSON(key)
				return nil
			}
			fmt.Printf("fingerprint: %s\n", key.Fingerprint)
			fmt.Printf("exportable:  %t\n", key.Exportable)
			fmt.Println(key.PublicKey)
			return nil
		},
	}
	return cmd
}

func keysListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List key names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := newClient().ListKeys(cmd.Context())
			if err != nil {
				return err
			}
			if outFormat == "json" {
				printJSON(sigilsdk.ListKeysData{Keys: names})
				return nil
			}
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}
	return cmd
}

func keysDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a key and all its subkeys",
		Long: `Deletes the named key. Signatures made with the key or any of its
subkeys stop verifying. Deleting a key that does not exist is not an
error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().DeleteKey(cmd.Context(), args[0]); err != nil {
				return err
			}
			if outFormat == "json" {
				printJSON(map[string]string{"name": args[0]})
				return nil
			}
			fmt.Printf("deleted key %q\n", args[0])
			return nil
		},
	}
	return cmd
}

func keysExportCmd() *cobra.Command {
	var keyType string
	cmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Export a key's private keyring",
		Long: `Exports the ASCII-armored private keyring of an exportable key. The
server refuses to export keys created without --exportable.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			export, err := newClient().ExportKey(cmd.Context(), args[0], keyType)
			if err != nil {
				return err
			}
			if outFormat == "json" {
				printJSON(export)
				return nil
			}
			fmt.Println(export.Key)
			return nil
		},
	}
	cmd.Flags().StringVar(&keyType, "type", "", "Export key type hint, e.g. signing-key; the keyring is the same either way")
	return cmd
}
