package bootstrap_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pybundle/internal/adapters/bootstrap"
	"go.trai.ch/pybundle/internal/core/domain"
)

func renderBootstrap(t *testing.T, spec domain.BootstrapSpec) string {
	t.Helper()
	r, err := bootstrap.NewRenderer()
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, r.WriteBootstrap(dir, spec))

	content, err := os.ReadFile(filepath.Join(dir, domain.BootstrapFileName))
	require.NoError(t, err)
	return string(content)
}

func TestRenderer_WriteBootstrap(t *testing.T) {
	script := renderBootstrap(t, domain.BootstrapSpec{
		AppFolder:         "Demo",
		EntryModule:       "core",
		EnvDir:            domain.EnvDirName,
		LogsDir:           domain.LogsDirName,
		InstallRootEnvVar: domain.InstallRootEnvVar("Demo"),
	})

	assert.Contains(t, script, `APP_PKG = "Demo"`)
	assert.Contains(t, script, `ENTRY_MODULE = "core"`)
	assert.Contains(t, script, `ENV_DIR_NAME = "Env"`)
	assert.Contains(t, script, `LOGS_DIR_NAME = "logs"`)
	assert.Contains(t, script, `os.environ["DEMO_INSTALL_ROOT"]`)
	assert.Contains(t, script, `runpy.run_module(APP_PKG + "." + ENTRY_MODULE, run_name="__main__")`)
	assert.Contains(t, script, "sys.exit(1)")
	assert.Contains(t, script, "_boot_error.log")
	assert.Contains(t, script, "MessageBoxW")

	// Search-path candidates appear in priority order: install root first,
	// then the app-code directory, then site-packages, then the runtime root.
	assert.Contains(t, script,
		"candidates = [install_root, app_code_path, site_packages_path, env_path]")

	// The failure boundary encloses the module execution.
	assert.Less(t,
		strings.Index(script, "try:"),
		strings.Index(script, "runpy.run_module"))
	assert.Less(t,
		strings.Index(script, "runpy.run_module"),
		strings.Index(script, "except Exception"))
}

func TestRenderer_EnvVarDefaultsFromAppFolder(t *testing.T) {
	script := renderBootstrap(t, domain.BootstrapSpec{
		AppFolder:   "My_App",
		EntryModule: "core",
		EnvDir:      domain.EnvDirName,
		LogsDir:     domain.LogsDirName,
	})

	assert.Contains(t, script, `os.environ["MY_APP_INSTALL_ROOT"]`)
}

func TestRenderer_NestedEntryModule(t *testing.T) {
	script := renderBootstrap(t, domain.BootstrapSpec{
		AppFolder:   "Demo",
		EntryModule: domain.EntryModulePath("sub/launch.py"),
		EnvDir:      domain.EnvDirName,
		LogsDir:     domain.LogsDirName,
	})

	assert.Contains(t, script, `ENTRY_MODULE = "sub.launch"`)
}

func TestRenderer_WritePathConfig(t *testing.T) {
	r, err := bootstrap.NewRenderer()
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, r.WritePathConfig(dir, domain.RuntimeVersion{Version: "3.11.2"}))

	content, err := os.ReadFile(filepath.Join(dir, domain.PathConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, "python311.zip\nLib\n.\nimport site\n", string(content))
}

func TestRenderer_WriteSetupHelper(t *testing.T) {
	r, err := bootstrap.NewRenderer()
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, r.WriteSetupHelper(dir, domain.DefaultLayoutConfig()))

	content, err := os.ReadFile(filepath.Join(dir, domain.SetupHelperFileName))
	require.NoError(t, err)

	s := string(content)
	assert.True(t, strings.HasPrefix(s, "@echo off\r\n"))
	assert.Contains(t, s, `powershell.exe -ExecutionPolicy Bypass -NoProfile -File "%~dp0setup.ps1" -InstallPath "%~dp0..\"`)
	assert.Contains(t, s, "_internal")
	assert.Contains(t, s, "pause")
}
