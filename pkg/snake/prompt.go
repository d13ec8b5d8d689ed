// Package snake holds the interactive prompts used by the CLI.
package snake

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
)

// ErrNotInteractive is returned when a prompt is needed but stdin is not a
// terminal.
var ErrNotInteractive = errors.New("input required but stdin is not a terminal")

// Prompter asks questions on a terminal.
type Prompter struct {
	In  io.ReadCloser
	Out io.WriteCloser
	// Interactive overrides terminal detection when non-nil.
	Interactive *bool
}

// IsInteractive reports whether prompts can be shown.
func (p *Prompter) IsInteractive() bool {
	if p.Interactive != nil {
		return *p.Interactive
	}
	var in io.Reader = os.Stdin
	if p.In != nil {
		in = p.In
	}
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Confirm asks a yes/no question. Anything but y or yes is a no.
func (p *Prompter) Confirm(label string) (bool, error) {
	if !p.IsInteractive() {
		return false, ErrNotInteractive
	}
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     p.In,
		Stdout:    p.Out,
	}
	result, err := prompt.Run()
	if errors.Is(err, promptui.ErrAbort) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(result)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// String asks for a non-empty value, offering def when set.
func (p *Prompter) String(label, def string) (string, error) {
	if !p.IsInteractive() {
		return "", ErrNotInteractive
	}
	validate := func(input string) error {
		if strings.TrimSpace(input) == "" && def == "" {
			return errors.New("empty")
		}
		return nil
	}

	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }}: ",
		Valid:   "{{ . | green }}: ",
		Invalid: "{{ . | red }}: ",
		Success: "{{ . | bold }}: ",
	}

	prompt := promptui.Prompt{
		Label:     label,
		Default:   def,
		Templates: templates,
		Validate:  validate,
		Stdin:     p.In,
		Stdout:    p.Out,
	}
	result, err := prompt.Run()
	if err != nil {
		return "", err
	}
	result = strings.TrimSpace(result)
	if result == "" {
		result = def
	}
	return result, nil
}
