package logging

import (
	"os"
	"strings"
	"testing"
)

func resetState() {
	CloseAll()
	optsMu.Lock()
	opts = Options{}
	optsMu.Unlock()
}

// TestAllCategoriesLog tests that all categories create log files when debug_mode is true
func TestAllCategoriesLog(t *testing.T) {
	resetState()
	t.Cleanup(resetState)

	dir := t.TempDir()
	if err := Initialize(Options{DebugMode: true, Level: "debug", Dir: dir}); err != nil {
		t.Fatalf("Failed to initialize logging: %v", err)
	}
	if !IsDebugMode() {
		t.Error("Expected debug mode to be enabled")
	}

	categories := []Category{
		CategoryBoot,
		CategoryCatalogue,
		CategoryExtract,
		CategoryExecute,
		CategoryRender,
		CategoryPager,
	}
	for _, cat := range categories {
		if !IsCategoryEnabled(cat) {
			t.Errorf("Category %s should be enabled", cat)
		}
		l := Get(cat)
		l.Info("Test info message for %s", cat)
		l.Debug("Test debug message for %s", cat)
		l.Warn("Test warn message for %s", cat)
		l.Error("Test error message for %s", cat)
	}

	CloseAll()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read logs dir: %v", err)
	}
	for _, cat := range categories {
		found := false
		for _, entry := range entries {
			if !strings.HasSuffix(entry.Name(), "_"+string(cat)+".log") {
				continue
			}
			found = true
			content, err := os.ReadFile(dir + "/" + entry.Name())
			if err != nil {
				t.Errorf("Failed to read log file for %s: %v", cat, err)
				continue
			}
			if !strings.Contains(string(content), "Test debug message") {
				t.Errorf("Log file for %s is missing debug output", cat)
			}
		}
		if !found {
			t.Errorf("No log file found for category: %s", cat)
		}
	}
}

// TestDebugModeDisabled tests that no logs are created when debug_mode is false
func TestDebugModeDisabled(t *testing.T) {
	resetState()
	t.Cleanup(resetState)

	dir := t.TempDir()
	if err := Initialize(Options{DebugMode: false, Dir: dir}); err != nil {
		t.Fatalf("Failed to initialize logging: %v", err)
	}

	Boot("should not be written")
	Execute("should not be written")
	CloseAll()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read logs dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no log files in production mode, got %d", len(entries))
	}
}

func TestCategoryFilter(t *testing.T) {
	resetState()
	t.Cleanup(resetState)

	dir := t.TempDir()
	err := Initialize(Options{
		DebugMode:  true,
		Dir:        dir,
		Categories: map[string]bool{"pager": false},
	})
	if err != nil {
		t.Fatalf("Failed to initialize logging: %v", err)
	}

	if IsCategoryEnabled(CategoryPager) {
		t.Error("pager category should be disabled")
	}
	if !IsCategoryEnabled(CategoryRender) {
		t.Error("unlisted categories default to enabled")
	}
}

func TestJSONFormat(t *testing.T) {
	resetState()
	t.Cleanup(resetState)

	dir := t.TempDir()
	if err := Initialize(Options{DebugMode: true, JSONFormat: true, Dir: dir}); err != nil {
		t.Fatalf("Failed to initialize logging: %v", err)
	}
	Get(CategoryRender).With("unit", "lib.containers").Info("rendered %d categories", 3)
	CloseAll()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read logs dir: %v", err)
	}
	var body string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), "_render.log") {
			data, _ := os.ReadFile(dir + "/" + entry.Name())
			body = string(data)
		}
	}
	if !strings.Contains(body, `"msg":"rendered 3 categories"`) {
		t.Errorf("expected JSON message, got %q", body)
	}
	if !strings.Contains(body, `"unit":"lib.containers"`) {
		t.Errorf("expected structured field, got %q", body)
	}
}

func TestInitializeRequiresDir(t *testing.T) {
	resetState()
	t.Cleanup(resetState)

	if err := Initialize(Options{DebugMode: true}); err == nil {
		t.Error("expected error when debug mode has no directory")
	}
}
