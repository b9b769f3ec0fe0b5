package symlinks

import (
	"path/filepath"
	"testing"

	"github.com/metov/dotstree/pkg/filesystem"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	origin      string
	target      string
	otherTarget string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return fixture{
		origin:      filepath.Join(dir, "origin"),
		target:      filepath.Join(dir, "target"),
		otherTarget: filepath.Join(dir, "another-target"),
	}
}

// answer is a Confirmer that always gives the same reply and records prompts
type answer struct {
	reply   bool
	prompts []string
}

func (a *answer) confirm(prompt string, def bool) (bool, error) {
	a.prompts = append(a.prompts, prompt)
	return a.reply, nil
}

func newInstaller(a *answer) *Installer {
	return NewInstaller(InstallerOptions{
		FS:      filesystem.NewOS(),
		Confirm: a.confirm,
		Logger:  zerolog.Nop(),
	})
}
