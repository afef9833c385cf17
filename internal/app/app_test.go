package app_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pybundle/internal/adapters/archive"
	"go.trai.ch/pybundle/internal/adapters/bootstrap"
	"go.trai.ch/pybundle/internal/adapters/config"
	"go.trai.ch/pybundle/internal/adapters/fs"
	"go.trai.ch/pybundle/internal/adapters/manifest"
	"go.trai.ch/pybundle/internal/adapters/metadata"
	"go.trai.ch/pybundle/internal/app"
	"go.trai.ch/pybundle/internal/core/domain"
	"go.trai.ch/pybundle/internal/core/ports"
	"go.trai.ch/pybundle/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// newApp assembles an App from the real filesystem adapters and the given
// logger and compiler, so staging runs end to end against a temp directory.
func newApp(t *testing.T, logger ports.Logger, compiler ports.CompilerRunner) *app.App {
	t.Helper()
	renderer, err := bootstrap.NewRenderer()
	require.NoError(t, err)
	return app.New(
		config.NewLoader(logger),
		manifest.NewResolver(logger),
		fs.NewLayoutBuilder(logger),
		fs.NewMarker(),
		renderer,
		metadata.NewWriter(),
		fs.NewHasher(),
		archive.NewZipper(),
		compiler,
		logger,
	)
}

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	logger := mocks.NewMockLogger(gomock.NewController(t))
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return logger
}

// writeSource lays down a minimal application tree with a pinned runtime.
func writeSource(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "core.py"), []byte("print('hi')\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "util"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "util", "helpers.py"), []byte("x = 1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "requirements.txt"), []byte("requests\npython==3.11.2\n"), 0o644))
	return dir
}

func TestApp_Stage_FullLayout(t *testing.T) {
	src := writeSource(t)
	outDir := t.TempDir()
	a := newApp(t, quietLogger(t), mocks.NewMockCompilerRunner(gomock.NewController(t)))

	root, err := a.Stage(context.Background(), app.StageOptions{
		SourceDir: src,
		AppName:   "Demo",
		EntryFile: "core.py",
		Version:   "2.0.0",
		OutDir:    outDir,
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "Demo_pkg"), root)

	internal := filepath.Join(root, domain.InternalDirName)

	meta, err := os.ReadFile(filepath.Join(internal, domain.MetadataFileName))
	require.NoError(t, err)
	assert.Equal(t,
		"AppName=Demo\nAppFolder=Demo\nEntryFile=core.py\nVersion=2.0.0\nRuntimeVersion=3.11.2\n",
		string(meta))

	pth, err := os.ReadFile(filepath.Join(internal, domain.PathConfigFileName))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pth), "python311.zip\n"))

	boot, err := os.ReadFile(filepath.Join(internal, domain.BootstrapFileName))
	require.NoError(t, err)
	assert.Contains(t, string(boot), `APP_PKG = "Demo"`)
	assert.Contains(t, string(boot), `ENTRY_MODULE = "core"`)

	assert.FileExists(t, filepath.Join(internal, domain.SetupHelperFileName))

	// Source copied under the app folder and marked importable.
	assert.FileExists(t, filepath.Join(root, "Demo", "core.py"))
	assert.FileExists(t, filepath.Join(root, "Demo", domain.PackageMarkerFileName))
	assert.FileExists(t, filepath.Join(root, "Demo", "util", domain.PackageMarkerFileName))
}

func TestApp_Stage_DefaultsAndWarning(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "core.py"), []byte("pass\n"), 0o644))

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	a := newApp(t, logger, mocks.NewMockCompilerRunner(ctrl))

	outDir := t.TempDir()
	root, err := a.Stage(context.Background(), app.StageOptions{SourceDir: src, OutDir: outDir})
	require.NoError(t, err)

	// No manifest: the policy default runtime is recorded.
	meta, err := os.ReadFile(filepath.Join(root, domain.InternalDirName, domain.MetadataFileName))
	require.NoError(t, err)
	assert.Contains(t, string(meta), "RuntimeVersion=3.10.0\n")
	assert.Contains(t, string(meta), "Version=1.0.0\n")
	assert.Contains(t, string(meta), "AppName="+filepath.Base(src)+"\n")
	assert.Contains(t, string(meta), "EntryFile=core.py\n")
}

func TestApp_Stage_MissingSource(t *testing.T) {
	a := newApp(t, quietLogger(t), mocks.NewMockCompilerRunner(gomock.NewController(t)))

	outDir := t.TempDir()
	_, err := a.Stage(context.Background(), app.StageOptions{
		SourceDir: filepath.Join(outDir, "does-not-exist"),
		OutDir:    outDir,
	})
	require.ErrorIs(t, err, domain.ErrSourceNotFound)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestApp_Stage_ZipArchive(t *testing.T) {
	src := writeSource(t)
	outDir := t.TempDir()
	a := newApp(t, quietLogger(t), mocks.NewMockCompilerRunner(gomock.NewController(t)))

	root, err := a.Stage(context.Background(), app.StageOptions{
		SourceDir: src,
		AppName:   "Demo",
		OutDir:    outDir,
		Zip:       true,
	})
	require.NoError(t, err)
	assert.FileExists(t, root+".zip")
}

func TestApp_Build_CompilesStagedTree(t *testing.T) {
	src := writeSource(t)
	iss := filepath.Join(t.TempDir(), "installer.iss")
	require.NoError(t, os.WriteFile(iss, []byte("[Setup]\n"), 0o644))

	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockCompilerRunner(ctrl)
	compiler.EXPECT().Find("").Return("/opt/iscc/ISCC.exe", nil)

	var staged string
	compiler.EXPECT().
		Compile(gomock.Any(), "/opt/iscc/ISCC.exe", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, script string, defines domain.CompileDefines) error {
			staged = defines.BuildDir
			assert.Equal(t, iss, script)
			assert.Equal(t, "Demo", defines.AppName)
			assert.Equal(t, "2.0.0", defines.AppVersion)
			assert.Equal(t, "Demo_Setup", defines.OutName)
			assert.Equal(t, "Demo_pkg", filepath.Base(defines.BuildDir))
			assert.FileExists(t, filepath.Join(defines.BuildDir, "Demo", "core.py"))
			return nil
		})

	a := newApp(t, quietLogger(t), compiler)
	err := a.Build(context.Background(), app.BuildOptions{
		SourceDir:  src,
		AppName:    "Demo",
		Version:    "2.0.0",
		ScriptPath: iss,
	})
	require.NoError(t, err)

	// The temporary staging tree is removed once the compiler returns.
	assert.NoDirExists(t, staged)
}

func TestApp_Build_MissingCompilerFailsBeforeStaging(t *testing.T) {
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockCompilerRunner(ctrl)
	compiler.EXPECT().Find("").Return("", domain.ErrCompilerNotFound)

	a := newApp(t, quietLogger(t), compiler)
	err := a.Build(context.Background(), app.BuildOptions{
		SourceDir:  t.TempDir(),
		ScriptPath: "installer.iss",
	})
	require.ErrorIs(t, err, domain.ErrCompilerNotFound)
}

func TestApp_Build_MissingScript(t *testing.T) {
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockCompilerRunner(ctrl)
	compiler.EXPECT().Find("").Return("/opt/iscc/ISCC.exe", nil)

	a := newApp(t, quietLogger(t), compiler)
	err := a.Build(context.Background(), app.BuildOptions{
		SourceDir:  t.TempDir(),
		ScriptPath: filepath.Join(t.TempDir(), "missing.iss"),
	})
	require.ErrorIs(t, err, domain.ErrScriptNotFound)
}

func TestApp_Build_CustomOutputName(t *testing.T) {
	src := writeSource(t)
	iss := filepath.Join(t.TempDir(), "installer.iss")
	require.NoError(t, os.WriteFile(iss, []byte("[Setup]\n"), 0o644))

	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockCompilerRunner(ctrl)
	compiler.EXPECT().Find("/custom/ISCC.exe").Return("/custom/ISCC.exe", nil)
	compiler.EXPECT().
		Compile(gomock.Any(), "/custom/ISCC.exe", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, defines domain.CompileDefines) error {
			assert.Equal(t, "DemoInstaller", defines.OutName)
			return nil
		})

	a := newApp(t, quietLogger(t), compiler)
	err := a.Build(context.Background(), app.BuildOptions{
		SourceDir:    src,
		AppName:      "Demo",
		ScriptPath:   iss,
		OutputName:   "DemoInstaller.exe",
		CompilerPath: "/custom/ISCC.exe",
	})
	require.NoError(t, err)
}
