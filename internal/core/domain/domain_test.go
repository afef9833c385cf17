package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pybundle/internal/core/domain"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain name unchanged", in: "Demo", want: "Demo"},
		{name: "spaces become underscores", in: "My App", want: "My_App"},
		{name: "multiple spaces", in: "My  Big App", want: "My__Big_App"},
		{name: "surrounding whitespace trimmed", in: "  Demo ", want: "Demo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.SanitizeName(tt.in))
		})
	}
}

func TestStagingRoot_Deterministic(t *testing.T) {
	first := domain.StagingRoot("/out", "My App")
	second := domain.StagingRoot("/out", "My App")

	assert.Equal(t, first, second)
	assert.Equal(t, filepath.Join("/out", "My_App_pkg"), first)
}

func TestEntryModulePath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "flat entry file", in: "core.py", want: "core"},
		{name: "forward slash nesting", in: "sub/launch.py", want: "sub.launch"},
		{name: "backslash nesting", in: `sub\launch.py`, want: "sub.launch"},
		{name: "no extension", in: "core", want: "core"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.EntryModulePath(tt.in))
		})
	}
}

func TestRuntimeVersion_MajorMinor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "full version", in: "3.11.2", want: "311"},
		{name: "major minor only", in: "3.10", want: "310"},
		{name: "major only", in: "3", want: "3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := domain.RuntimeVersion{Version: tt.in}
			assert.Equal(t, tt.want, v.MajorMinor())
		})
	}
}

func TestInstallRootEnvVar(t *testing.T) {
	assert.Equal(t, "MY_APP_INSTALL_ROOT", domain.InstallRootEnvVar("My_App"))
	assert.Equal(t, "DEMO_INSTALL_ROOT", domain.InstallRootEnvVar("Demo"))
}

func TestSourceApplication_AppFolder(t *testing.T) {
	app := domain.SourceApplication{Name: "My App"}
	assert.Equal(t, "My_App", app.AppFolder())
}

func TestCompilerExitError(t *testing.T) {
	err := &domain.CompilerExitError{Code: 3}
	assert.Contains(t, err.Error(), "3")
}
