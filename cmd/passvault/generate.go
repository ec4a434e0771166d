package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/passvault/internal/application"
	"github.com/ericfisherdev/passvault/internal/domain/model"
)

func newGenerateCmd() *cobra.Command {
	policy := model.DefaultPasswordPolicy()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a random password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := application.NewPasswordGenerator().Generate(policy)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), password)
			return err
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&policy.Length, "length", "l", policy.Length, "number of characters")
	flags.BoolVar(&policy.IncludeUppercase, "uppercase", policy.IncludeUppercase, "include uppercase letters")
	flags.BoolVar(&policy.IncludeNumbers, "numbers", policy.IncludeNumbers, "include digits")
	flags.BoolVar(&policy.IncludeSymbols, "symbols", policy.IncludeSymbols, "include symbols")

	return cmd
}
