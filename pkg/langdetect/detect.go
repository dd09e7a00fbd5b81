// Package langdetect guesses the language of fenced code that was written
// without a language tag. Writeup snippets are mostly shell sessions and
// short exploit scripts, so those are checked before the go-enry classifier.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Fence tags returned by Detect.
const (
	Bash       = "bash"
	PowerShell = "powershell"
	Python     = "python"
	JavaScript = "javascript"
	JSON       = "json"
	YAML       = "yaml"
	HTML       = "html"
	SQL        = "sql"
	HTTP       = "http"
	Go         = "go"
	Text       = "text"
)

//nolint:gochecknoglobals // Read-only candidate list for the classifier.
var classifierCandidates = []string{
	"Shell", "PowerShell", "Python", "JavaScript", "PHP", "Ruby",
	"C", "Go", "SQL", "JSON", "YAML", "HTML", "XML",
}

// Detect returns the fence tag for content, or Text when unsure.
func Detect(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return Text
	}

	if lang, safe := enry.GetLanguageByShebang(trimmed); safe {
		return normalize(lang)
	}

	for _, rule := range patternRules {
		if rule.match(trimmed) {
			return rule.lang
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(trimmed, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return Text
}

type patternRule struct {
	lang  string
	match func(trimmed []byte) bool
}

// Order matters: HTTP requests contain JSON bodies and shell sessions
// often embed other languages in heredocs.
//
//nolint:gochecknoglobals // Read-only rule table.
var patternRules = []patternRule{
	{HTTP, isHTTPMessage},
	{Bash, isShellSession},
	{PowerShell, isPowerShell},
	{Go, func(b []byte) bool { return bytes.HasPrefix(b, []byte("package ")) }},
	{Python, isPython},
	{HTML, isHTML},
	{JSON, isJSON},
	{SQL, isSQL},
	{JavaScript, isJavaScript},
	{YAML, isYAML},
}

//nolint:gochecknoglobals // Read-only lookup table.
var httpMethods = []string{"GET ", "POST ", "PUT ", "DELETE ", "PATCH ", "HEAD ", "OPTIONS "}

func isHTTPMessage(trimmed []byte) bool {
	first, _, _ := strings.Cut(string(trimmed), "\n")
	first = strings.TrimSpace(first)
	if strings.HasPrefix(first, "HTTP/1.") || strings.HasPrefix(first, "HTTP/2") {
		return true
	}
	for _, method := range httpMethods {
		if strings.HasPrefix(first, method) && strings.Contains(first, " HTTP/") {
			return true
		}
	}
	return false
}

// shellTools are commands that open most enumeration and exploitation steps.
//
//nolint:gochecknoglobals // Read-only lookup table.
var shellTools = map[string]bool{
	"nmap": true, "curl": true, "wget": true, "ssh": true, "nc": true,
	"sudo": true, "gobuster": true, "ffuf": true, "hydra": true, "john": true,
	"hashcat": true, "echo": true, "cat": true, "ls": true, "cd": true,
	"chmod": true, "grep": true, "find": true, "export": true, "smbclient": true,
	"sqlmap": true, "searchsploit": true, "msfconsole": true, "whoami": true, "id": true,
}

func isShellSession(trimmed []byte) bool {
	first, _, _ := strings.Cut(string(trimmed), "\n")
	first = strings.TrimSpace(first)
	if strings.HasPrefix(first, "$ ") || (strings.HasPrefix(first, "# ") && strings.Contains(first, "/")) {
		return true
	}
	command, _, _ := strings.Cut(first, " ")
	return shellTools[command]
}

func isPowerShell(trimmed []byte) bool {
	text := string(trimmed)
	return strings.HasPrefix(text, "PS ") ||
		strings.Contains(text, "Get-") ||
		strings.Contains(text, "Invoke-") ||
		strings.Contains(text, "$env:")
}

func isPython(trimmed []byte) bool {
	text := string(trimmed)
	if strings.Contains(text, "def ") && strings.Contains(text, "):") {
		return true
	}
	if strings.HasPrefix(text, "import ") || (strings.HasPrefix(text, "from ") && strings.Contains(text, " import ")) {
		return true
	}
	return strings.Contains(text, "__name__") || strings.Contains(text, "print(")
}

func isHTML(trimmed []byte) bool {
	lower := bytes.ToLower(trimmed)
	for _, marker := range []string{"<!doctype html", "<html", "<head>", "<body", "<script", "<form"} {
		if bytes.Contains(lower, []byte(marker)) {
			return true
		}
	}
	return false
}

func isJSON(trimmed []byte) bool {
	return (trimmed[0] == '{' || trimmed[0] == '[') && bytes.Contains(trimmed, []byte(`"`))
}

func isSQL(trimmed []byte) bool {
	upper := strings.ToUpper(string(trimmed))
	for _, keyword := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE ", "UNION "} {
		if strings.HasPrefix(upper, keyword) {
			return true
		}
	}
	return false
}

func isJavaScript(trimmed []byte) bool {
	text := string(trimmed)
	return strings.Contains(text, "=>") ||
		strings.Contains(text, "const ") ||
		strings.Contains(text, "console.log") ||
		strings.Contains(text, "document.")
}

// isYAML needs at least two plain "key: value" or list lines.
func isYAML(trimmed []byte) bool {
	count := 0
	for _, line := range bytes.Split(trimmed, []byte("\n")) {
		line = bytes.TrimSpace(line)
		switch {
		case len(line) == 0 || line[0] == '#':
			continue
		case bytes.HasPrefix(line, []byte("- ")):
			count++
		case bytes.Contains(line, []byte(": ")) && !bytes.ContainsAny(line, "({;"):
			count++
		}
	}
	return count >= 2
}

func normalize(lang string) string {
	switch lang {
	case "Shell":
		return Bash
	case "PowerShell":
		return PowerShell
	default:
		return strings.ToLower(lang)
	}
}

// Label returns the caption shown in a code block header: "Shell" for
// bash, "Terminal" for untagged blocks and the tag itself otherwise.
func Label(lang string) string {
	switch strings.ToLower(lang) {
	case "":
		return "Terminal"
	case Bash:
		return "Shell"
	default:
		return lang
	}
}

// Prompted reports whether lines of lang are shown with a "$ " prompt.
func Prompted(lang string) bool {
	switch strings.ToLower(lang) {
	case Bash, "shell", "sh":
		return true
	default:
		return false
	}
}
