package docker

import (
	"testing"

	"github.com/diillson/shellfix/engine"
)

func runGroup(cmd engine.Command, session engine.SessionMetadata) []string {
	var out []string
	for _, rule := range Group().Rules {
		if !rule.Matches(cmd, session) {
			continue
		}
		for _, c := range rule.Generate(cmd, session) {
			out = append(out, c.Render(engine.Bash))
		}
	}
	return out
}

func TestDockerImageRm(t *testing.T) {
	cmd := engine.NewCommand("docker image rm ssh_image",
		`Error response from daemon: conflict: unable to remove repository reference "ssh_image" (must force)
- container 6e6714ce8662 is using its referenced image afc220a774e6`, engine.ExitCode(1))

	got := runGroup(cmd, engine.NewSessionMetadata())
	if len(got) != 1 || got[0] != "docker image rm --force ssh_image" {
		t.Fatalf("got %v", got)
	}
}

func TestDockerNoCommand(t *testing.T) {
	cmd := engine.NewCommand("docker img", `docker: 'img' is not a docker command.
See 'docker --help'`, engine.ExitCode(1))

	got := runGroup(cmd, engine.NewSessionMetadata())
	if len(got) != 1 || got[0] != "docker image" {
		t.Fatalf("got %v", got)
	}
}

func TestDockerLogin(t *testing.T) {
	cmd := engine.NewCommand("docker push repo/image", `The push refers to repository repo/image.
push access denied for repo/image, repository does not exist or may require 'docker login'`, engine.ExitCode(1))

	got := runGroup(cmd, engine.NewSessionMetadata())
	if len(got) != 1 || got[0] != "docker login && docker push repo/image" {
		t.Fatalf("got %v", got)
	}
}
