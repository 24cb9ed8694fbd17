package domain

import (
	"regexp"
	"slices"
	"strings"
	"testing"
)

func TestCommandsOrderAndCount(t *testing.T) {
	want := []string{
		"click",
		"close_page",
		"drag",
		"emulate",
		"evaluate_script",
		"fill",
		"fill_form",
		"get_console_message",
		"get_network_request",
		"handle_dialog",
		"hover",
		"list_console_messages",
		"list_network_requests",
		"list_pages",
		"navigate_page",
		"new_page",
		"performance_analyze_insight",
		"performance_start_trace",
		"performance_stop_trace",
		"press_key",
		"resize_page",
		"select_page",
		"take_screenshot",
		"take_snapshot",
		"upload_file",
		"wait_for",
	}
	if got := Names(); !slices.Equal(got, want) {
		t.Fatalf("unexpected command names:\n got %v\nwant %v", got, want)
	}
}

func TestCommandsAreWellFormed(t *testing.T) {
	snakeCase := regexp.MustCompile(`^[a-z_]+$`)
	seen := map[string]bool{}
	for _, cmd := range Commands() {
		if !snakeCase.MatchString(cmd.Name) {
			t.Fatalf("command %q is not lowercase snake_case", cmd.Name)
		}
		if seen[cmd.Name] {
			t.Fatalf("duplicate command %q", cmd.Name)
		}
		seen[cmd.Name] = true
		if strings.TrimSpace(cmd.Description) == "" {
			t.Fatalf("command %q has no description", cmd.Name)
		}
		if strings.TrimSpace(cmd.Detail) == "" {
			t.Fatalf("command %q has no parameter detail", cmd.Name)
		}
	}
}

func TestCommandsReturnsCopy(t *testing.T) {
	list := Commands()
	list[0].Name = "mutated"
	if Names()[0] != "click" {
		t.Fatal("expected Commands to return a copy")
	}
}

func TestLookup(t *testing.T) {
	cmd, ok := Lookup("  click  ")
	if !ok {
		t.Fatal("expected click to be found")
	}
	if !strings.Contains(cmd.Description, "Clicks") {
		t.Fatalf("unexpected click description %q", cmd.Description)
	}
	if !strings.Contains(cmd.Detail, "uid") {
		t.Fatalf("expected click detail to mention uid, got %q", cmd.Detail)
	}

	nav, ok := Lookup("navigate_page")
	if !ok || !strings.Contains(nav.Description, "Navigates") || !strings.Contains(nav.Detail, "url") {
		t.Fatalf("unexpected navigate_page entry %+v", nav)
	}

	if _, ok := Lookup("unknown_command"); ok {
		t.Fatal("expected unknown command lookup to fail")
	}
	if _, ok := Lookup(""); ok {
		t.Fatal("expected blank lookup to fail")
	}
}

func TestRequiresSnapshot(t *testing.T) {
	for _, name := range []string{"click", "drag", "fill", "fill_form", "handle_dialog", "hover", "press_key", "upload_file"} {
		if !RequiresSnapshot(name) {
			t.Fatalf("expected %s to require a snapshot", name)
		}
	}
	for _, name := range []string{"list_pages", "navigate_page", "take_screenshot", "evaluate_script", SnapshotTool, ""} {
		if RequiresSnapshot(name) {
			t.Fatalf("expected %q not to require a snapshot", name)
		}
	}
}

func TestSnapshotCommandsAreKnown(t *testing.T) {
	names := SnapshotCommands()
	if len(names) != 8 {
		t.Fatalf("expected 8 snapshot commands, got %d", len(names))
	}
	if !slices.IsSorted(names) {
		t.Fatalf("expected sorted names, got %v", names)
	}
	for _, name := range names {
		if _, ok := Lookup(name); !ok {
			t.Fatalf("snapshot command %q missing from catalog", name)
		}
	}
	if _, ok := Lookup(SnapshotTool); !ok {
		t.Fatal("priming tool missing from catalog")
	}
}
