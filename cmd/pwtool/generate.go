package main

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/vaultpass/pwtool/internal/clipboard"
	"github.com/vaultpass/pwtool/internal/config"
	"github.com/vaultpass/pwtool/internal/model"
	"github.com/vaultpass/pwtool/internal/service"
)

var copyToClipboard = clipboard.Copy

type generateOptions struct {
	length  int
	digits  bool
	special bool
	count   int
	copy    bool
}

func newGenerateCmd(cfg config.Config) *cobra.Command {
	opts := generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random passwords",
		Long: `Generate passwords drawn uniformly from ASCII letters plus digits and/or
punctuation using the operating system's secure random source.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, cfg, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.length, "length", "l", 0, "Password length (default from DEFAULT_LENGTH, 12)")
	cmd.Flags().BoolVar(&opts.digits, "digits", true, "Include digits 0-9")
	cmd.Flags().BoolVar(&opts.special, "special", true, "Include punctuation characters")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 1, "Number of passwords to generate")
	cmd.Flags().BoolVarP(&opts.copy, "copy", "c", false, "Copy the last password to the clipboard")
	return cmd
}

func runGenerate(cmd *cobra.Command, cfg config.Config, opts generateOptions) error {
	if opts.count < 1 {
		return errors.New("count must be at least 1")
	}

	req := model.GenerateRequest{
		Length:  opts.length,
		Digits:  &opts.digits,
		Special: &opts.special,
	}
	if err := validator.New().Struct(req); err != nil {
		return fmt.Errorf("invalid length %d: must be between 8 and 128", opts.length)
	}

	svc := service.NewGeneratorService(cfg.DefaultLength)
	out := cmd.OutOrStdout()

	var last string
	for i := 0; i < opts.count; i++ {
		resp, err := svc.Generate(req)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, resp.Password)
		last = resp.Password
	}

	if opts.copy {
		if copyToClipboard(last) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard.")
		} else {
			fmt.Fprintln(cmd.ErrOrStderr(), "warning: could not copy to clipboard")
		}
	}
	return nil
}
