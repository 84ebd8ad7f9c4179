package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"glossconv/internal/config"
)

// promptMetadata asks for every metadata field that is still empty. An empty
// answer keeps the field empty; for languages it keeps the current list.
func promptMetadata(in io.Reader, out io.Writer, m *config.Metadata) error {
	sc := bufio.NewScanner(in)
	ask := func(question string) (string, error) {
		fmt.Fprintln(out, question)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", fmt.Errorf("read answer: %w", err)
			}
			return "", nil
		}
		return strings.TrimSpace(sc.Text()), nil
	}

	fields := []struct {
		question string
		dst      *string
	}{
		{"Enter informant code", &m.Informant},
		{"Enter expeditioner code", &m.Expeditioner},
		{"Enter expedition date", &m.ExpeditionDate},
		{"Who else was there?", &m.WhoElse},
		{"Approx theme?", &m.Theme},
	}
	for _, f := range fields {
		if *f.dst != "" {
			continue
		}
		v, err := ask(f.question)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	v, err := ask(fmt.Sprintf("Input languages present in your document, separated by commas.\n"+
		"In babel the last language is the main one, activated by default.\n"+
		"(current = %q on Enter)", strings.Join(m.Languages, ", ")))
	if err != nil {
		return err
	}
	if v != "" {
		m.Languages = config.ParseLanguages(v)
	}
	return nil
}
