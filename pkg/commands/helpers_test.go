package commands

import (
	"path/filepath"
	"testing"

	"github.com/metov/dotstree/pkg/config"
	"github.com/metov/dotstree/pkg/testutil"
)

// newTree creates a canonical temp directory and writes files into it.
// Keys are slash-separated relative paths.
func newTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := testutil.CanonicalTempDir(t)
	for rel, content := range files {
		testutil.CreateFile(t, root, rel, content)
	}
	return root
}

// fakeHome points HOME at a fresh canonical directory
func fakeHome(t *testing.T) string {
	t.Helper()
	home := testutil.CanonicalTempDir(t)
	t.Setenv("HOME", home)
	return home
}

// testConfig keeps the install lock inside the test's temp dir
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Install.Lock = filepath.Join(t.TempDir(), "install.lock")
	return cfg
}

// prompts is a Confirmer giving a fixed reply and recording questions
type prompts struct {
	reply bool
	asked []string
}

func (p *prompts) confirm(prompt string, def bool) (bool, error) {
	p.asked = append(p.asked, prompt)
	return p.reply, nil
}

type countingProgress struct {
	max       int
	described []string
	added     int
	finished  bool
}

func (p *countingProgress) ChangeMax(newMax int) {
	p.max = newMax
}

func (p *countingProgress) Describe(description string) {
	p.described = append(p.described, description)
}

func (p *countingProgress) Add(n int) error {
	p.added += n
	return nil
}

func (p *countingProgress) Finish() error {
	p.finished = true
	return nil
}
