package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name       string
	Desc       string
	Flags      []flagDef
	TakesFiles bool // accepts file arguments
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	FileGlob string // file glob pattern
	IsDir    bool   // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"config": {FileGlob: "*.yaml,*.yml"},
	"output": {IsDir: true},
	"assets": {IsDir: true},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			if meta.FileGlob != "" {
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			} else if meta.IsDir {
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSet - single source of truth.
func getCommands() []commandDef {
	flags := extractFlagsFromFlagSet(newConvertFlagSet(&convertFlags{}))

	return []commandDef{
		{Name: "convert", Desc: "Convert plain text files to HTML", Flags: flags, TakesFiles: true},
		{Name: "config", Desc: "Print the effective configuration", Flags: flags},
		{Name: "completion", Desc: "Generate shell completion script"},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	cmds := getCommands()

	var b strings.Builder
	switch shell {
	case ShellBash:
		writeBash(&b, cmds)
	case ShellZsh:
		writeZsh(&b, cmds)
	case ShellFish:
		writeFish(&b, cmds)
	case ShellPowerShell:
		writePowerShell(&b, cmds)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// flagWords lists every --long and -short spelling of flags.
func flagWords(flags []flagDef) []string {
	words := make([]string, 0, len(flags)*2)
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return words
}

func commandNames(cmds []commandDef) []string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return names
}

func writeBash(b *strings.Builder, cmds []commandDef) {
	b.WriteString("# bash completion for autop\n")
	b.WriteString("_autop() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")

	b.WriteString("    case \"$prev\" in\n")
	for _, f := range cmds[0].Flags {
		switch f.Type {
		case flagFile:
			fmt.Fprintf(b, "        %s) COMPREPLY=($(compgen -f -- \"$cur\")); return ;;\n", bashFlagPattern(f))
		case flagDir:
			fmt.Fprintf(b, "        %s) COMPREPLY=($(compgen -d -- \"$cur\")); return ;;\n", bashFlagPattern(f))
		}
	}
	b.WriteString("    esac\n\n")

	b.WriteString("    if [[ $COMP_CWORD -eq 1 && \"$cur\" != -* ]]; then\n")
	fmt.Fprintf(b, "        COMPREPLY=($(compgen -W \"%s\" -- \"$cur\") $(compgen -f -- \"$cur\"))\n", strings.Join(commandNames(cmds), " "))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    case \"$cmd\" in\n")
	for _, c := range cmds {
		switch {
		case c.Name == "completion":
			b.WriteString("        completion) COMPREPLY=($(compgen -W \"bash zsh fish powershell\" -- \"$cur\")) ;;\n")
		case c.Name == "help":
			fmt.Fprintf(b, "        help) COMPREPLY=($(compgen -W \"%s\" -- \"$cur\")) ;;\n", strings.Join(commandNames(cmds), " "))
		case len(c.Flags) > 0:
			files := ""
			if c.TakesFiles {
				files = " $(compgen -f -- \"$cur\")"
			}
			fmt.Fprintf(b, "        %s) COMPREPLY=($(compgen -W \"%s\" -- \"$cur\")%s) ;;\n",
				c.Name, strings.Join(flagWords(c.Flags), " "), files)
		}
	}
	fmt.Fprintf(b, "        *) COMPREPLY=($(compgen -W \"%s\" -- \"$cur\") $(compgen -f -- \"$cur\")) ;;\n",
		strings.Join(flagWords(cmds[0].Flags), " "))
	b.WriteString("    esac\n")
	b.WriteString("}\n")
	b.WriteString("complete -F _autop autop\n")
}

func bashFlagPattern(f flagDef) string {
	if f.Short != "" {
		return "--" + f.Long + "|-" + f.Short
	}
	return "--" + f.Long
}

func writeZsh(b *strings.Builder, cmds []commandDef) {
	b.WriteString("#compdef autop\n\n")
	b.WriteString("_autop() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(b, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("    )\n\n")

	b.WriteString("    _arguments -C \\\n")
	for _, f := range cmds[0].Flags {
		fmt.Fprintf(b, "        %s \\\n", zshFlagSpec(f))
	}
	b.WriteString("        '1: :->first' \\\n")
	b.WriteString("        '*:file:_files'\n\n")
	b.WriteString("    case $state in\n")
	b.WriteString("        first) _describe 'command' commands; _files ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _autop autop\n")
}

func zshFlagSpec(f flagDef) string {
	action := ""
	switch f.Type {
	case flagBool:
	case flagFile:
		globs := strings.ReplaceAll(f.FileGlob, ",", "|")
		action = fmt.Sprintf(":file:_files -g \"(%s)\"", globs)
	case flagDir:
		action = ":directory:_files -/"
	default:
		action = ":" + f.Long + ":"
	}

	desc := zshEscape(f.Desc)
	if f.Short != "" {
		return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, desc, action)
	}
	return fmt.Sprintf("'--%s[%s]%s'", f.Long, desc, action)
}

func zshEscape(s string) string {
	r := strings.NewReplacer("'", "'\\''", "[", "\\[", "]", "\\]", ":", "\\:")
	return r.Replace(s)
}

func writeFish(b *strings.Builder, cmds []commandDef) {
	b.WriteString("# fish completion for autop\n")
	names := strings.Join(commandNames(cmds), " ")
	for _, c := range cmds {
		fmt.Fprintf(b, "complete -c autop -n 'not __fish_seen_subcommand_from %s' -a %s -d '%s'\n",
			names, c.Name, fishEscape(c.Desc))
	}
	b.WriteString("complete -c autop -n '__fish_seen_subcommand_from completion' -f -a 'bash zsh fish powershell'\n")

	for _, f := range cmds[0].Flags {
		line := "complete -c autop -l " + f.Long
		if f.Short != "" {
			line += " -s " + f.Short
		}
		switch f.Type {
		case flagBool:
		case flagDir:
			line += " -r -a '(__fish_complete_directories)'"
		case flagFile:
			line += " -r -F"
		default:
			line += " -r"
		}
		line += " -d '" + fishEscape(f.Desc) + "'"
		b.WriteString(line + "\n")
	}
}

func fishEscape(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}

func writePowerShell(b *strings.Builder, cmds []commandDef) {
	b.WriteString("# PowerShell completion for autop\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName autop -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n")
	b.WriteString("    $words = @(\n")
	for _, c := range cmds {
		fmt.Fprintf(b, "        '%s'\n", c.Name)
	}
	for _, w := range flagWords(cmds[0].Flags) {
		fmt.Fprintf(b, "        '%s'\n", w)
	}
	b.WriteString("    )\n")
	b.WriteString("    $words | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}

	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: autop completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(autop completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(autop completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    autop completion fish > ~/.config/fish/completions/autop.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    autop completion powershell | Out-String | Invoke-Expression")
}
