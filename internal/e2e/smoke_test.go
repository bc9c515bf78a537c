package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shopModel = `{
  "system": {"name": "Shop"},
  "entities": [{"id": "order", "name": "Order", "type": "class"}],
  "actors": [{"id": "buyer", "name": "Buyer", "type": "human"}],
  "useCases": [{"id": "checkout", "name": "Checkout", "actors": ["buyer"]}]
}`

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	modelPath := filepath.Join(home, "shop.json")
	require.NoError(t, os.WriteFile(modelPath, []byte(shopModel), 0o600))

	_, stderr, err := runUmlgen(t, binaryPath, home, "model", "import", modelPath)
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runUmlgen(t, binaryPath, home, "view", "switch", "use_case")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "@startuml")
	assert.Contains(t, stdout, "Checkout")

	stdout, stderr, err = runUmlgen(t, binaryPath, home, "view", "switch", "class")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Order")
}

func TestSmokeSwitchWithoutModelFails(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	_, stderr, err := runUmlgen(t, binaryPath, home, "--session", "empty", "view", "switch", "class")
	require.Error(t, err)
	assert.Contains(t, stderr, "call generate first")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "umlgen-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/umlgen")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build umlgen binary: %s", string(output))
	return binaryPath
}

func runUmlgen(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
