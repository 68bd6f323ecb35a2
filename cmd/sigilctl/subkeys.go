package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/sigil/pkg/sigilsdk"
)

// subkeysCmd builds the "subkeys" command group. Subkeys are signing keys
// bound under a master key; they sign on the master's behalf and can be
// expired or deleted independently of it.
func subkeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subkeys",
		Short: "Manage signing subkeys of a master key",
	}
	cmd.AddCommand(
		subkeysCreateCmd(),
		subkeysReadCmd(),
		subkeysListCmd(),
		subkeysDeleteCmd(),
	)
	return cmd
}

func printSubkey(sub *sigilsdk.SubkeyData) {
	if outFormat == "json" {
		printJSON(sub)
		return
	}
	fmt.Printf("key id:      %s\n", sub.KeyID)
	fmt.Printf("type:        %s\n", sub.KeyType)
	fmt.Printf("fingerprint: %s\n", sub.Fingerprint)
	fmt.Printf("created:     %s\n", sub.CreatedAt)
	if sub.ExpiresAt != "" {
		fmt.Printf("expires:     %s\n", sub.ExpiresAt)
	}
}

func subkeysCreateCmd() *cobra.Command {
	var (
		keyType string
		expires int
	)
	cmd := &cobra.Command{
		Use:   "create <key-name>",
		Short: "Add a signing subkey to a key",
		Long: `Generates a new signing subkey under the named master key. Once a
key has subkeys, signing uses the newest live subkey instead of the
master.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := sigilsdk.CreateSubkeyRequest{
				KeyType: keyType,
				Expires: expires,
			}
			sub, err := newClient().CreateSubkey(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			printSubkey(sub)
			return nil
		},
	}
	cmd.Flags().StringVar(&keyType, "type", "", "Subkey algorithm: rsa-2048|rsa-4096|ecc-p256|ed25519 (default rsa-4096)")
	cmd.Flags().IntVar(&expires, "expires", 0, "Subkey validity in seconds, 0 for no expiry")
	return cmd
}

func subkeysReadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read <key-name> <key-id>",
		Short: "Show a subkey's metadata",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sub, err := newClient().ReadSubkey(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			printSubkey(sub)
			return nil
		},
	}
	return cmd
}

func subkeysListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <key-name>",
		Short: "List a key's subkey IDs in creation order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := newClient().ListSubkeys(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if outFormat == "json" {
				printJSON(sigilsdk.ListSubkeysData{KeyIDs: ids})
				return nil
			}
			for _, id := range ids {
				fmt.Println(id)
			}
			return nil
		},
	}
	return cmd
}

func subkeysDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <key-name> <key-id>",
		Short: "Delete a subkey",
		Long: `Deletes a subkey from its master key. Signatures made with the
subkey stop verifying; the master key and its other subkeys are not
affected.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().DeleteSubkey(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			if outFormat == "json" {
				printJSON(map[string]string{"name": args[0], "key_id": args[1]})
				return nil
			}
			fmt.Printf("deleted subkey %s of %q\n", args[1], args[0])
			return nil
		},
	}
	return cmd
}
