package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/folio/pkg/langdetect"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"empty", "", langdetect.Text},
		{"whitespace", "  \n\t", langdetect.Text},
		{"shebang bash", "#!/bin/bash\necho hi", langdetect.Bash},
		{"shebang python", "#!/usr/bin/env python3\nprint('x')", langdetect.Python},
		{"prompt", "$ id\nuid=0(root)", langdetect.Bash},
		{"nmap", "nmap -sC -sV -p- 10.10.11.5", langdetect.Bash},
		{"sudo", "sudo -l", langdetect.Bash},
		{"http request", "GET /admin HTTP/1.1\nHost: target\n\n{\"a\": 1}", langdetect.HTTP},
		{"http response", "HTTP/1.1 200 OK\nServer: nginx", langdetect.HTTP},
		{"powershell", "PS C:\\> Get-ChildItem -Force", langdetect.PowerShell},
		{"go", "package main\n\nfunc main() {}", langdetect.Go},
		{"python", "import requests\nr = requests.get(url)", langdetect.Python},
		{"python def", "def exploit(host):\n    pass", langdetect.Python},
		{"html", "<form action=\"/login\"><input name=\"u\"></form>", langdetect.HTML},
		{"json", `{"user": "admin", "role": 1}`, langdetect.JSON},
		{"sql", "SELECT * FROM users WHERE id = 1", langdetect.SQL},
		{"sql union", "union select 1,2,3--", langdetect.SQL},
		{"javascript", "const x = () => 42;", langdetect.JavaScript},
		{"yaml", "name: box\nos: linux\nports:\n  - 22", langdetect.YAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, langdetect.Detect([]byte(tt.content)))
		})
	}
}

func TestLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Terminal", langdetect.Label(""))
	assert.Equal(t, "Shell", langdetect.Label("bash"))
	assert.Equal(t, "Shell", langdetect.Label("BASH"))
	assert.Equal(t, "python", langdetect.Label("python"))
}

func TestPrompted(t *testing.T) {
	t.Parallel()

	assert.True(t, langdetect.Prompted("bash"))
	assert.True(t, langdetect.Prompted("shell"))
	assert.True(t, langdetect.Prompted("sh"))
	assert.False(t, langdetect.Prompted(""))
	assert.False(t, langdetect.Prompted("python"))
}
