// Package bootstrap renders the install-time artifacts: the launcher
// script, the runtime search-path file, and the manual setup wrapper.
package bootstrap

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"go.trai.ch/pybundle/internal/core/domain"
	"go.trai.ch/zerr"
)

// bootTemplate is the launcher program executed by the bundled interpreter
// at install/run time. It is the last line of defense for a non-technical
// installer user: any startup fault is caught, logged, surfaced, and turned
// into a non-zero exit.
//
// Search-path insertion order determines resolution priority: install root
// first, then the application-code directory, then the bundled runtime's
// site-packages, then the runtime root. Candidates are inserted only when
// they exist on disk and are not already on the path.
const bootTemplate = `#!/usr/bin/env python3
import sys
import os
import runpy
import datetime
import traceback

ENV_DIR_NAME = "{{ .EnvDir }}"
LOGS_DIR_NAME = "{{ .LogsDir }}"
APP_PKG = "{{ .AppFolder }}"
ENTRY_MODULE = "{{ .EntryModule }}"

install_root = None

try:
    script_dir = os.path.dirname(__file__)
    install_root = os.path.abspath(os.path.join(script_dir, ".."))

    app_code_path = os.path.join(install_root, APP_PKG)
    env_path = os.path.join(install_root, ENV_DIR_NAME)
    site_packages_path = os.path.join(env_path, "Lib", "site-packages")

    candidates = [install_root, app_code_path, site_packages_path, env_path]
    for index, candidate in enumerate(candidates):
        if os.path.exists(candidate) and candidate not in sys.path:
            sys.path.insert(index, candidate)

    os.environ["{{ .InstallRootEnvVar | default (printf "%s_INSTALL_ROOT" (upper .AppFolder)) }}"] = install_root
    runpy.run_module(APP_PKG + "." + ENTRY_MODULE, run_name="__main__")
except Exception as exc:
    timestamp = datetime.datetime.now().strftime("%Y-%m-%d %H:%M:%S")
    error_type = type(exc).__name__
    error_message = str(exc)

    report = "\n".join([
        "--- APPLICATION BOOT ERROR LOG: " + APP_PKG + " ---",
        "Timestamp: " + timestamp,
        "Python Version: " + sys.version.split()[0] + " (" + sys.executable + ")",
        "OS: " + sys.platform,
        "Install Root: " + (install_root or "Unknown"),
        "App Package: " + APP_PKG,
        "Entry Module: " + ENTRY_MODULE,
        "",
        "Error Type: " + error_type,
        "Error Message: " + error_message,
        "",
        "Full Traceback:",
        traceback.format_exc(),
        "-" * 50,
        "",
    ])

    temp_dir = os.environ.get("TEMP", os.path.expanduser("~"))
    if install_root:
        log_dir = os.path.join(install_root, LOGS_DIR_NAME)
    else:
        log_dir = temp_dir
    try:
        os.makedirs(log_dir, exist_ok=True)
        log_path = os.path.join(log_dir, APP_PKG + "_boot_error.log")
    except Exception:
        log_path = os.path.join(temp_dir, APP_PKG + "_boot_error_fallback.log")

    logged_message = "Details have been logged to: " + log_path
    try:
        with open(log_path, "a", encoding="utf-8") as log_file:
            log_file.write(report)
    except Exception as write_error:
        logged_message = "Failed to write log file '" + log_path + "': " + str(write_error)

    print("FATAL ERROR in " + APP_PKG + ": " + error_type + " - " + error_message
          + ". " + logged_message, file=sys.stderr)

    if sys.platform == "win32":
        title = APP_PKG + " - Application Startup Error"
        summary = ("A critical error occurred while starting " + APP_PKG + ".\n\n"
                   + "Error: " + error_type + " - " + error_message + "\n\n"
                   + logged_message + "\n\n"
                   + "Please check the log file for a detailed traceback.")
        try:
            import ctypes
            ctypes.windll.user32.MessageBoxW(None, summary, title, 0x10)
        except Exception:
            print(report, file=sys.stderr)
    else:
        print(report, file=sys.stderr)

    sys.exit(1)
`

// Renderer implements ports.BootstrapGenerator with text templates.
type Renderer struct {
	boot *template.Template
}

// NewRenderer parses the launcher template.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("boot").Funcs(sprig.TxtFuncMap()).Parse(bootTemplate)
	if err != nil {
		return nil, errors.Join(domain.ErrRenderFailed, err)
	}
	return &Renderer{boot: tmpl}, nil
}

// WriteBootstrap renders boot.py from spec into internalDir.
func (r *Renderer) WriteBootstrap(internalDir string, spec domain.BootstrapSpec) error {
	var buf bytes.Buffer
	if err := r.boot.Execute(&buf, spec); err != nil {
		return zerr.With(errors.Join(domain.ErrRenderFailed, err), "app", spec.AppFolder)
	}

	path := filepath.Join(internalDir, domain.BootstrapFileName)
	if err := os.WriteFile(path, buf.Bytes(), domain.FilePerm); err != nil {
		return zerr.With(errors.Join(domain.ErrStagingWriteFailed, err), "path", path)
	}
	return nil
}

// WritePathConfig writes the runtime search-path configuration: the runtime
// archive for the resolved major.minor, the library directory, the current
// directory, and the site import directive.
func (r *Renderer) WritePathConfig(internalDir string, rv domain.RuntimeVersion) error {
	content := fmt.Sprintf("python%s.zip\nLib\n.\nimport site\n", rv.MajorMinor())
	path := filepath.Join(internalDir, domain.PathConfigFileName)
	if err := os.WriteFile(path, []byte(content), domain.FilePerm); err != nil {
		return zerr.With(errors.Join(domain.ErrStagingWriteFailed, err), "path", path)
	}
	return nil
}

// WriteSetupHelper writes the double-clickable wrapper that re-invokes the
// platform setup script with an explicit install path, for manual and
// diagnostic use outside the installer-compiler flow.
func (r *Renderer) WriteSetupHelper(internalDir string, cfg domain.LayoutConfig) error {
	lines := []string{
		"@echo off",
		"echo Running setup from %~dp0setup.ps1",
		fmt.Sprintf("echo Installation target (parent of %s) will be %%~dp0..\\", cfg.InternalDir),
		`powershell.exe -ExecutionPolicy Bypass -NoProfile -File "%~dp0setup.ps1" -InstallPath "%~dp0..\"`,
		"echo Setup script finished. Press any key to exit.",
		"pause",
		"",
	}
	content := strings.Join(lines, "\r\n")
	path := filepath.Join(internalDir, domain.SetupHelperFileName)
	if err := os.WriteFile(path, []byte(content), domain.FilePerm); err != nil {
		return zerr.With(errors.Join(domain.ErrStagingWriteFailed, err), "path", path)
	}
	return nil
}
