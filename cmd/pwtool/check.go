package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vaultpass/pwtool/internal/model"
	"github.com/vaultpass/pwtool/internal/service"
	"github.com/vaultpass/pwtool/internal/strength"
	"golang.org/x/term"
)

var checkDescriptions = map[strength.Name]string{
	strength.Length:    fmt.Sprintf("at least %d characters", strength.MinLength),
	strength.Lowercase: "contains a lowercase letter",
	strength.Uppercase: "contains an uppercase letter",
	strength.Digits:    "contains a digit",
	strength.Special:   "contains a punctuation character",
	strength.Common:    "not a common password",
	strength.Repeats:   "no character repeated three times in a row",
	strength.Sequences: "no numeric or keyboard-row sequence",
}

func newCheckCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "check [password]",
		Short: "Score a password against the strength checklist",
		Long: `Score a password. When no argument is given the password is read without
echo from the terminal, or as a single line from standard input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd, args)
			if err != nil {
				return err
			}
			resp := service.NewStrengthService().Check(model.CheckRequest{Password: password})
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}
			printReport(cmd.OutOrStdout(), resp)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	return cmd
}

func readPassword(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func printReport(w io.Writer, resp model.CheckResponse) {
	for _, c := range resp.Checks {
		mark := "✗"
		if c.Passed {
			mark = "✓"
		}
		fmt.Fprintf(w, "%s %-10s %s\n", mark, c.Name, checkDescriptions[c.Name])
	}
	fmt.Fprintf(w, "\nScore: %d/%d (%d%%) %s\n", resp.Passed, resp.Total, resp.Percent, resp.Level)
	fmt.Fprintf(w, "Estimate: %d/4, %.1f bits, crack time %s\n",
		resp.Estimate.Score, resp.Estimate.Entropy, resp.Estimate.CrackTime)
}
