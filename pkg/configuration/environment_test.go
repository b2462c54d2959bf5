package configuration

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnv_LoadsExistingFiles(t *testing.T) {
	tmp := t.TempDir()

	requireWriteFile(t, filepath.Join(tmp, ".env.local"), "SENDIKA_TEST_ENV_LOAD=ok\n")

	origWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("chdir: %v", err)
	}

	_ = os.Unsetenv("SENDIKA_TEST_ENV_LOAD")

	n, err := LoadEnv([]string{".env", ".env.local"})
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 env file loaded, got %d", n)
	}
	if got := os.Getenv("SENDIKA_TEST_ENV_LOAD"); got != "ok" {
		t.Fatalf("expected env var loaded, got %q", got)
	}
}

func TestLoad_ImportDefaults(t *testing.T) {
	c := &Configuration{}
	if err := c.load(nil); err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Import.MaxFileSize != 5*1024*1024 {
		t.Errorf("expected 5 MB max file size, got %d", c.Import.MaxFileSize)
	}
	if c.Import.MaxRows != 2000 {
		t.Errorf("expected 2000 max rows, got %d", c.Import.MaxRows)
	}
	if c.Import.PreviewRows != 200 {
		t.Errorf("expected 200 preview rows, got %d", c.Import.PreviewRows)
	}
}

func TestLoad_ImportOverrides(t *testing.T) {
	t.Setenv("IMPORT_MAX_ROWS", "50")
	t.Setenv("IMPORT_PREVIEW_ROWS", "10")

	c := &Configuration{}
	if err := c.load(nil); err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Import.MaxRows != 50 {
		t.Errorf("expected 50 max rows, got %d", c.Import.MaxRows)
	}
	if c.Import.PreviewRows != 10 {
		t.Errorf("expected 10 preview rows, got %d", c.Import.PreviewRows)
	}
}

func requireWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
