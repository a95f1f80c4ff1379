package mcpclient

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func readJSON(t *testing.T, path string) map[string]interface{} {
	t.Helper()
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	var data map[string]interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	return data
}

func serverEntry(t *testing.T, data map[string]interface{}) map[string]interface{} {
	t.Helper()
	servers, ok := data["mcpServers"].(map[string]interface{})
	if !ok {
		t.Fatal("mcpServers missing")
	}
	entry, ok := servers["tix"].(map[string]interface{})
	if !ok {
		t.Fatal("tix entry missing")
	}
	return entry
}

func TestInstallCreatesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ".claude.json")
	entry := ServerEntry{Command: "/usr/local/bin/tix", Args: []string{"serve"}}

	result, err := Install(path, entry)
	if err != nil {
		t.Fatalf("Install: %v", err)
	}
	if result != Installed {
		t.Fatalf("result = %s, want installed", result)
	}

	got := serverEntry(t, readJSON(t, path))
	if got["command"] != "/usr/local/bin/tix" {
		t.Fatalf("command = %v", got["command"])
	}
}

func TestInstallPreservesOtherServers(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".claude.json")
	existing := `{"mcpServers":{"other":{"command":"/bin/other","args":[]}},"theme":"dark"}`
	if err := os.WriteFile(path, []byte(existing), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Install(path, ServerEntry{Command: "/bin/tix", Args: []string{"serve"}}); err != nil {
		t.Fatalf("Install: %v", err)
	}

	data := readJSON(t, path)
	servers := data["mcpServers"].(map[string]interface{})
	if _, ok := servers["other"]; !ok {
		t.Fatal("other server entry was dropped")
	}
	if data["theme"] != "dark" {
		t.Fatal("unrelated config key was dropped")
	}
}

func TestInstallIdempotentAndUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mcp.json")
	entry := ServerEntry{Command: "/bin/tix", Args: []string{"serve"}}

	if result, _ := Install(path, entry); result != Installed {
		t.Fatalf("first install = %v", result)
	}
	if result, _ := Install(path, entry); result != AlreadyInstalled {
		t.Fatalf("second install = %v, want already_installed", result)
	}

	changed := ServerEntry{Command: "/bin/tix", Args: []string{"serve", "--config", "/etc/tix.toml"}}
	if result, _ := Install(path, changed); result != Updated {
		t.Fatalf("changed install = %v, want updated", result)
	}

	got := serverEntry(t, readJSON(t, path))
	args := got["args"].([]interface{})
	if len(args) != 3 {
		t.Fatalf("args = %v", args)
	}
}

func TestRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mcp.json")
	if _, err := Install(path, ServerEntry{Command: "/bin/tix", Args: []string{"serve"}}); err != nil {
		t.Fatal(err)
	}

	removed, err := Remove(path)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if !removed {
		t.Fatal("expected removed=true")
	}

	data := readJSON(t, path)
	if _, ok := data["mcpServers"]; ok {
		t.Fatal("empty mcpServers key should be dropped")
	}

	removed, err = Remove(path)
	if err != nil {
		t.Fatalf("second Remove: %v", err)
	}
	if removed {
		t.Fatal("expected removed=false when absent")
	}
}

func TestRemoveMissingFile(t *testing.T) {
	removed, err := Remove(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if removed {
		t.Fatal("expected removed=false for missing file")
	}
}

func TestStatus(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".cursor-mcp.json")

	cs, err := Status(Cursor, path)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if cs.Exists || cs.Installed {
		t.Fatalf("expected not exists/installed, got %+v", cs)
	}

	entry := ServerEntry{Command: "/bin/tix", Args: []string{"serve"}}
	if _, err := Install(path, entry); err != nil {
		t.Fatal(err)
	}

	cs, err = Status(Cursor, path)
	if err != nil {
		t.Fatalf("Status after install: %v", err)
	}
	if !cs.Exists || !cs.Installed {
		t.Fatalf("expected exists and installed, got %+v", cs)
	}
	if cs.Entry == nil || cs.Entry.Command != "/bin/tix" {
		t.Fatalf("entry = %+v", cs.Entry)
	}
}

func TestConfigPathPerClient(t *testing.T) {
	home := "/home/tester"
	for _, client := range AllClients() {
		path, err := ConfigPath(client, home)
		if err != nil {
			t.Fatalf("ConfigPath(%s): %v", client, err)
		}
		if path == "" {
			t.Fatalf("ConfigPath(%s) empty", client)
		}
	}

	if _, err := ConfigPath(Client("emacs"), home); err == nil {
		t.Fatal("expected error for unknown client")
	}
}

func TestValidClient(t *testing.T) {
	for _, c := range []string{"claude-code", "claude-desktop", "cursor"} {
		if !ValidClient(c) {
			t.Errorf("ValidClient(%q) = false", c)
		}
	}
	if ValidClient("vim") {
		t.Error("ValidClient(vim) = true")
	}
}
