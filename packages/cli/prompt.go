package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"reponavigator/packages/guide"
)

// readRepository takes owner and name from args, asking on in for whatever
// is missing. Input is trimmed; empty values are left for the resolver to
// reject.
func readRepository(in io.Reader, out io.Writer, args []string) (string, string, error) {
	var owner, name string
	if len(args) > 0 {
		owner = args[0]
	}
	if len(args) > 1 {
		name = args[1]
	}

	reader := bufio.NewReader(in)
	ask := func(label string) (string, error) {
		fmt.Fprint(out, label)
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", err
		}
		return line, nil
	}

	var err error
	if len(args) < 1 {
		if owner, err = ask("Enter owner name: "); err != nil {
			return "", "", err
		}
	}
	if len(args) < 2 {
		if name, err = ask("Enter repo name: "); err != nil {
			return "", "", err
		}
	}
	return strings.TrimSpace(owner), strings.TrimSpace(name), nil
}

// progress prints one line per pipeline stage.
func progress(out io.Writer, generating string) func(guide.Stage) {
	return func(s guide.Stage) {
		switch s {
		case guide.StageResolve:
			fmt.Fprintln(out, "Fetching repository...")
		case guide.StageReadme:
			fmt.Fprintln(out, "Fetching README...")
		case guide.StageTree:
			fmt.Fprintln(out, "Fetching repository structure...")
		case guide.StageGenerate:
			fmt.Fprintln(out, generating)
		}
	}
}
