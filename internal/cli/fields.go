package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/galeria/admin-api/internal/client/form"
)

func flagName(field string) string {
	return strings.ReplaceAll(field, "_", "-")
}

// bindFields registers one flag per form field.
func bindFields(cmd *cobra.Command, fields []form.Field) {
	for _, f := range fields {
		name := flagName(form.NameOf(f))
		usage := string(form.KindOf(f))
		if sel, ok := f.(form.SelectField); ok {
			opts := make([]string, len(sel.Options))
			for i, o := range sel.Options {
				opts[i] = o.Value
			}
			usage = "one of " + strings.Join(opts, "|")
		}
		if _, ok := f.(form.FileField); ok {
			cmd.Flags().StringSlice(name, nil, "image file path(s)")
			continue
		}
		cmd.Flags().String(name, "", usage)
	}
}

// collect returns the values of the field flags that were set on cmd.
func collect(cmd *cobra.Command, fields []form.Field) (form.Values, error) {
	v := form.NewValues()
	for _, f := range fields {
		name := flagName(form.NameOf(f))
		if !cmd.Flags().Changed(name) {
			continue
		}
		if _, ok := f.(form.FileField); ok {
			paths, err := cmd.Flags().GetStringSlice(name)
			if err != nil {
				return v, err
			}
			for _, p := range paths {
				data, err := os.ReadFile(p)
				if err != nil {
					return v, fmt.Errorf("read %s: %w", p, err)
				}
				v.AddFile(form.NameOf(f), form.File{Name: filepath.Base(p), Data: data})
			}
			continue
		}
		s, err := cmd.Flags().GetString(name)
		if err != nil {
			return v, err
		}
		v.Set(form.NameOf(f), s)
	}
	return v, nil
}

// promptPassword reads a password without echo from a terminal, or a line
// from the command input otherwise.
func promptPassword(cmd *cobra.Command, prompt string) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		pass, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		return string(pass), err
	}
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
