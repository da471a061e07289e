package files

import (
	"os"
	"path/filepath"
	"testing"
)

func setupTestDir(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func TestInitProjectStructure(t *testing.T) {
	setupTestDir(t)

	if err := InitProjectStructure(); err != nil {
		t.Fatalf("InitProjectStructure: %v", err)
	}
	if _, err := os.Stat(filepath.Join(GridleyDir, SettingsFile)); err != nil {
		t.Errorf("settings file not created: %v", err)
	}

	// Re-running must not clobber existing settings.
	s, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings: %v", err)
	}
	s.Grid.ColumnWidth = 33
	if err := WriteSettings(s); err != nil {
		t.Fatalf("WriteSettings: %v", err)
	}
	if err := InitProjectStructure(); err != nil {
		t.Fatalf("second InitProjectStructure: %v", err)
	}
	s2, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings after re-init: %v", err)
	}
	if s2.Grid.ColumnWidth != 33 {
		t.Errorf("re-init clobbered settings: width = %d, want 33", s2.Grid.ColumnWidth)
	}
}

func TestReadSettingsFillsDefaults(t *testing.T) {
	setupTestDir(t)
	if err := os.MkdirAll(GridleyDir, 0755); err != nil {
		t.Fatal(err)
	}
	partial := "grid:\n  column_width: 16\n"
	if err := os.WriteFile(filepath.Join(GridleyDir, SettingsFile), []byte(partial), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings: %v", err)
	}
	if s.Grid.ColumnWidth != 16 {
		t.Errorf("column width = %d, want 16", s.Grid.ColumnWidth)
	}
	if s.Grid.HistoryCapacity != 50 {
		t.Errorf("history capacity = %d, want default 50", s.Grid.HistoryCapacity)
	}
	if s.Grid.Rows != 1000 || s.Grid.Cols != 26 {
		t.Errorf("grid bounds = %dx%d, want 1000x26", s.Grid.Rows, s.Grid.Cols)
	}
}

func TestLoadSettingsWithDefault(t *testing.T) {
	setupTestDir(t)

	// No project directory at all.
	s := LoadSettingsWithDefault()
	if s.Grid.HistoryCapacity != 50 {
		t.Errorf("fallback history capacity = %d, want 50", s.Grid.HistoryCapacity)
	}
}
