package cli_test

import (
	"bytes"
	"testing"

	"github.com/yaklabco/folio/internal/cli"
)

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}

	if cmd.Use != "folio" {
		t.Errorf("expected Use to be 'folio', got %q", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	expectedSubcommands := []string{
		"render", "blocks", "toc", "check", "copy",
		"build", "list", "tags", "theme",
		"init", "version",
	}

	for _, name := range expectedSubcommands {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected subcommand %q to exist, got error: %v", name, err)
			continue
		}

		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestThemeSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"show", "toggle", "set"} {
		subCmd, _, err := cmd.Find([]string{"theme", name})
		if err != nil {
			t.Errorf("expected theme subcommand %q, got error: %v", name, err)
			continue
		}
		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestCommandFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		command string
		flags   []string
	}{
		{"render", []string{"outline", "css", "italic", "no-highlight", "style"}},
		{"blocks", []string{"format"}},
		{"toc", []string{"format", "scroll", "line-height", "offset"}},
		{"check", []string{"strict", "no-reference", "flavor", "format", "summary"}},
		{"copy", []string{"block", "print"}},
		{"build", []string{"watch", "prune", "drafts", "jobs", "content", "output", "theme", "debounce"}},
		{"list", []string{"kind", "tag", "search", "drafts", "format"}},
		{"tags", []string{"format", "drafts"}},
		{"init", []string{"force", "full", "format", "output"}},
	}

	cmd := cli.NewRootCommand(testInfo())

	for _, tt := range tests {
		subCmd, _, err := cmd.Find([]string{tt.command})
		if err != nil {
			t.Fatalf("%s command not found: %v", tt.command, err)
		}

		for _, flagName := range tt.flags {
			if subCmd.Flags().Lookup(flagName) == nil {
				t.Errorf("expected flag %q to exist on %s command", flagName, tt.command)
			}
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	expectedFlags := []string{"debug", "config", "color"}

	for _, flagName := range expectedFlags {
		flag := cmd.PersistentFlags().Lookup(flagName)
		if flag == nil {
			t.Errorf("expected global flag %q to exist", flagName)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "1.2.3",
		Commit:  "abc123",
		Date:    "2024-01-01",
	}

	cmd := cli.NewRootCommand(info)
	cmd.SetArgs([]string{"version", "--short"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	if got := out.String(); got != "1.2.3\n" {
		t.Errorf("expected short version %q, got %q", "1.2.3\n", got)
	}
}

func TestCheckCommandAcceptsArbitraryArgs(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	checkCmd, _, err := cmd.Find([]string{"check"})
	if err != nil {
		t.Fatalf("check command not found: %v", err)
	}

	if err := checkCmd.Args(checkCmd, []string{"file1.md", "file2.md", "docs/"}); err != nil {
		t.Errorf("check command should accept arbitrary args, got error: %v", err)
	}
}

func TestDocumentCommandsTakeOneFile(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"render", "blocks", "toc", "copy"} {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Fatalf("%s command not found: %v", name, err)
		}
		if err := subCmd.Args(subCmd, []string{"a.md", "b.md"}); err == nil {
			t.Errorf("%s should reject two files", name)
		}
	}
}

func TestHelpGroupsCommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	cmd.SetArgs([]string{"--color=never", "--help"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("help failed: %v", err)
	}

	help := out.String()
	for _, want := range []string{"Document Commands:", "Site Commands:", "Additional Commands:", "render", "build", "--config"} {
		if !bytes.Contains([]byte(help), []byte(want)) {
			t.Errorf("expected help to contain %q\n%s", want, help)
		}
	}
}
