package utils

import (
	"os"
	"os/user"
	"testing"

	"github.com/diillson/shellfix/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupShellTest(t *testing.T, shell, historyContent string) {
	originalGetenv := osGetenv
	originalUserCurrent := userCurrent
	originalReadFile := osReadFile
	originalStat := osStat

	t.Cleanup(func() {
		osGetenv = originalGetenv
		userCurrent = originalUserCurrent
		osReadFile = originalReadFile
		osStat = originalStat
	})

	osGetenv = func(key string) string {
		if key == "SHELL" {
			return "/bin/" + shell
		}
		return os.Getenv(key)
	}
	userCurrent = func() (*user.User, error) {
		return &user.User{HomeDir: "/home/testuser"}, nil
	}
	osReadFile = func(name string) ([]byte, error) {
		return []byte(historyContent), nil
	}
	osStat = func(name string) (os.FileInfo, error) {
		return nil, nil
	}
}

func TestDetectShell(t *testing.T) {
	cases := []struct {
		shell string
		want  engine.Shell
	}{
		{"bash", engine.Bash},
		{"zsh", engine.Zsh},
		{"fish", engine.Fish},
		{"csh", engine.Bash},
	}
	for _, tc := range cases {
		setupShellTest(t, tc.shell, "")
		if got := DetectShell(); got != tc.want {
			t.Errorf("DetectShell() for %s = %v, want %v", tc.shell, got, tc.want)
		}
	}
}

func TestReadShellHistory(t *testing.T) {
	testCases := []struct {
		name           string
		shell          engine.Shell
		historyContent string
		want           []string
	}{
		{
			name:           "bash history",
			shell:          engine.Bash,
			historyContent: "ls -la\ngit status",
			want:           []string{"ls -la", "git status"},
		},
		{
			name:           "zsh extended history",
			shell:          engine.Zsh,
			historyContent: ": 1663200000:0;ls -la\n: 1663200001:0;git status",
			want:           []string{"ls -la", "git status"},
		},
		{
			name:           "fish history",
			shell:          engine.Fish,
			historyContent: "- cmd: ls -la\n- cmd: git status",
			want:           []string{"ls -la", "git status"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			shellName := map[engine.Shell]string{engine.Bash: "bash", engine.Zsh: "zsh", engine.Fish: "fish"}[tc.shell]
			setupShellTest(t, shellName, tc.historyContent)

			got, err := ReadShellHistory(tc.shell)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReadShellHistoryFileNotExist(t *testing.T) {
	setupShellTest(t, "bash", "")
	osStat = func(name string) (os.FileInfo, error) {
		return nil, os.ErrNotExist
	}

	_, err := ReadShellHistory(engine.Bash)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "history file not found")
}
