package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// Every shell script is generated from flagRegistry, so adding a flag only
// requires appending to it.
type FlagCompletion struct {
	Long      string   // long flag name without "--" (e.g., "tour")
	Short     string   // short flag without "-" (e.g., "f")
	Help      string   // description text
	Values    []string // suggested completion values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g., "duration")
	IsFile    bool     // true if the flag takes a file path
	IsRef     bool     // true if values come from the tour's reference ids
}

// flagRegistry is the central list of all CLI flags for completion generation.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Long: "tour", Short: "f", Help: "Tour definition file", IsFile: true, ValueName: "file"},
	{Long: "tick", Help: "Scheduling quantum", Values: []string{"16ms", "50ms", "100ms"}, ValueName: "duration"},
	{Long: "speed", Help: "Real-time speed multiplier", Values: []string{"0.5", "1", "2", "4"}, ValueName: "factor"},
	{Long: "simulate", Help: "Advance without waiting for the wall clock"},
	{Long: "tui", Help: "Launch the interactive dashboard"},
	{Long: "quiet", Short: "q", Help: "Print only the final summary"},
	{Long: "verbose", Short: "v", Help: "Print every step and skip"},
	{Long: "log-level", Help: "Diagnostic log level", Values: []string{"debug", "info", "warn", "error", "disabled"}, ValueName: "level"},
	{Long: "metrics-addr", Help: "Prometheus metrics address", Values: []string{":9464"}, ValueName: "addr"},
	{Long: "timeout", Help: "Maximum session duration", Values: []string{"30s", "1m", "5m"}, ValueName: "duration"},
	{Long: "hover-period", Help: "Half-cycle of hover pulses", Values: []string{"250ms", "500ms", "1s"}, ValueName: "duration"},
	{Long: "loop", Help: "Begin again after completion"},
	{Long: "continuous", Help: "Animators that only drive a fill", IsRef: true, ValueName: "ids"},
	{Long: "missing", Help: "Ids treated as unavailable", IsRef: true, ValueName: "ids"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "theme", Help: "Color theme", Values: []string{"dark", "light", "none"}, ValueName: "theme"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish"}, ValueName: "shell"},
}

// GenerateCompletion writes a completion script for shell ("bash", "zsh" or
// "fish"). refs are the reference ids offered for --continuous and --missing.
func GenerateCompletion(out io.Writer, shell string, refs []string) error {
	var script string
	switch shell {
	case "bash":
		script = bashCompletion(refs)
	case "zsh":
		script = zshCompletion(refs)
	case "fish":
		script = fishCompletion(refs)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish)", shell)
	}
	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion %s generation failed: %w", shell, err)
	}
	return nil
}

func flagNames(f FlagCompletion) []string {
	var names []string
	if f.Long != "" {
		names = append(names, "--"+f.Long)
	}
	if f.Short != "" {
		names = append(names, "-"+f.Short)
	}
	return names
}

func bashCompletion(refs []string) string {
	var opts []string
	var cases strings.Builder
	for _, f := range flagRegistry {
		opts = append(opts, flagNames(f)...)

		var body string
		switch {
		case f.IsFile:
			body = `COMPREPLY=( $(compgen -f -- "${cur}") )`
		case f.IsRef:
			body = `COMPREPLY=( $(compgen -W "${refs}" -- "${cur}") )`
		case len(f.Values) > 0:
			body = fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "${cur}") )`, strings.Join(f.Values, " "))
		default:
			continue
		}
		fmt.Fprintf(&cases, "        %s)\n            %s\n            return 0\n            ;;\n",
			strings.Join(flagNames(f), "|"), body)
	}

	return fmt.Sprintf(`# Bash completion script for revealtour
# Add this to your ~/.bashrc or ~/.bash_completion

_revealtour_completions() {
    local cur prev opts refs
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    opts="%s"
    refs="%s"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _revealtour_completions revealtour
`, strings.Join(opts, " "), strings.Join(refs, " "), cases.String())
}

func zshCompletion(refs []string) string {
	var args []string
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}
	return fmt.Sprintf(`#compdef revealtour

# Zsh completion script for revealtour
# Add this to your ~/.zshrc or place in $fpath

_revealtour() {
    local -a refs
    refs=(%s)

    _arguments -s \
%s
}

_revealtour "$@"
`, strings.Join(refs, " "), strings.Join(args, " \\\n"))
}

// zshArgEntry formats a single FlagCompletion as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion) string {
	valueSuffix := ""
	switch {
	case f.IsFile:
		valueSuffix = fmt.Sprintf(":%s:_files", f.ValueName)
	case f.IsRef:
		valueSuffix = fmt.Sprintf(":%s:($refs)", f.ValueName)
	case len(f.Values) > 0:
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	}

	if f.Long != "" && f.Short != "" {
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'",
			f.Short, f.Long, f.Short, f.Long, f.Help, valueSuffix)
	}
	return fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, valueSuffix)
}

func fishCompletion(refs []string) string {
	lines := []string{
		"# Fish completion script for revealtour",
		"# Add this to ~/.config/fish/completions/revealtour.fish",
		"",
		"complete -c revealtour -f",
	}
	for _, f := range flagRegistry {
		lines = append(lines, fishCompleteLine(f, refs))
	}
	return strings.Join(lines, "\n") + "\n"
}

// fishCompleteLine formats a single FlagCompletion as a fish complete command.
func fishCompleteLine(f FlagCompletion, refs []string) string {
	parts := []string{"complete -c revealtour"}
	if f.Short != "" {
		parts = append(parts, "-s "+f.Short)
	}
	if f.Long != "" {
		parts = append(parts, "-l "+f.Long)
	}
	parts = append(parts, fmt.Sprintf("-d '%s'", f.Help))

	switch {
	case f.IsFile:
		parts = append(parts, "-rF")
	case f.IsRef:
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(refs, " ")))
	case len(f.Values) > 0:
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
	}
	return strings.Join(parts, " ")
}
