package menu_test

import (
	"reflect"
	"testing"

	"github.com/gyaneshwarpardhi/simplifyadmin/internal/menu"
	"github.com/gyaneshwarpardhi/simplifyadmin/internal/settings"
)

func adminMenu() *menu.Menu {
	return &menu.Menu{
		Top: menu.Group{
			80: {Title: "Settings", Slug: "Settings"},
			2:  {Title: "Dashboard", Slug: "index.php"},
			4:  {Title: "", Slug: ""}, // separator
			25: {Title: "Comments <span class=\"awaiting-mod\">3</span>", Slug: "edit-comments.php"},
			5:  {Title: "Posts", Slug: "edit.php"},
		},
		Submenu: map[string]menu.Group{
			"Settings": {
				10: {Title: "General", Slug: "General"},
				15: {Title: "Writing", Slug: "Writing"},
				20: {Title: "", Slug: ""},
			},
			"edit.php": {
				5:  {Title: "All Posts", Slug: "edit.php"},
				10: {Title: "Add New", Slug: "post-new.php"},
			},
			"index.php": {
				0: {Title: "Home", Slug: "index.php"},
			},
		},
	}
}

func TestItems_OrderAndIDs(t *testing.T) {
	eng := menu.New()
	eng.Snapshot(adminMenu())
	items := eng.Items()

	var gotIDs []string
	for _, it := range items {
		gotIDs = append(gotIDs, it.ID)
	}
	want := []string{"index-php", "edit-php", "edit-comments-php", "settings"}
	if !reflect.DeepEqual(gotIDs, want) {
		t.Fatalf("ids = %v, want %v", gotIDs, want)
	}
	if items[2].Title != "Comments 3" {
		t.Errorf("comments title = %q", items[2].Title)
	}

	settingsItem := items[3]
	if len(settingsItem.Submenu) != 2 {
		t.Fatalf("settings submenu = %+v", settingsItem.Submenu)
	}
	if settingsItem.Submenu[0].ID != "settings-general" || settingsItem.Submenu[1].ID != "settings-writing" {
		t.Errorf("submenu ids = %+v", settingsItem.Submenu)
	}
	if items[1].Submenu[0].ID != "edit-php-edit-php" {
		t.Errorf("posts submenu id = %s", items[1].Submenu[0].ID)
	}
}

func TestItems_SnapshotIsIsolated(t *testing.T) {
	live := adminMenu()
	eng := menu.New()
	eng.Snapshot(live)
	eng.Prune(live, settings.Exclusions{"settings": true, "settings-general": true})

	items := eng.Items()
	if len(items) != 4 || len(items[3].Submenu) != 2 {
		t.Errorf("pruning live must not affect the snapshot: %+v", items)
	}
}

func TestPrune_SubmenuEntryOnly(t *testing.T) {
	live := adminMenu()
	eng := menu.New()
	eng.Snapshot(live)

	removed := eng.Prune(live, settings.Exclusions{"settings-general": true})
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if _, ok := live.Submenu["Settings"][10]; ok {
		t.Error("settings-general should be removed")
	}
	if _, ok := live.Submenu["Settings"][15]; !ok {
		t.Error("sibling submenu entry must survive")
	}
	if _, ok := live.Top[80]; !ok {
		t.Error("parent entry must survive")
	}
}

func TestPrune_TopLevel(t *testing.T) {
	live := adminMenu()
	eng := menu.New()
	eng.Snapshot(live)

	removed := eng.Prune(live, settings.Exclusions{"edit-comments-php": true, "index-php": true, "tools-php": true, "edit-php": false})
	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}
	if _, ok := live.Top[25]; ok {
		t.Error("comments should be removed")
	}
	if _, ok := live.Top[2]; ok {
		t.Error("dashboard should be removed")
	}
	if _, ok := live.Top[5]; !ok {
		t.Error("posts has a false flag and must survive")
	}
	if _, ok := live.Top[4]; !ok {
		t.Error("separators are never targeted")
	}
	if len(live.Submenu["index.php"]) != 1 {
		t.Error("top-level ids must not match submenu composites")
	}
}

func TestPrune_IdempotentAndNoOps(t *testing.T) {
	ex := settings.Exclusions{"settings": true, "edit-php-post-new-php": true}
	live := adminMenu()
	eng := menu.New()
	eng.Snapshot(live)

	eng.Prune(live, ex)
	once := live.Clone()
	if removed := eng.Prune(live, ex); removed != 0 {
		t.Errorf("second prune removed %d", removed)
	}
	if !reflect.DeepEqual(once, live) {
		t.Error("second prune changed the menu")
	}

	if eng.Prune(nil, ex) != 0 {
		t.Error("nil menu must be a no-op")
	}
	if eng.Prune(live, settings.Exclusions{}) != 0 {
		t.Error("empty exclusions must be a no-op")
	}
}

func TestIDs(t *testing.T) {
	if got := menu.SubmenuID("Settings", "General"); got != "settings-general" {
		t.Errorf("SubmenuID = %q", got)
	}
	if got := menu.ID("options-general.php"); got != "options-general-php" {
		t.Errorf("ID = %q", got)
	}
}

func TestItems_UnicodeAndUnusableSlugs(t *testing.T) {
	live := &menu.Menu{
		Top: menu.Group{
			10: {Title: "Настройки", Slug: "настройки"},
			20: {Title: "Плагины", Slug: "плагины"},
			30: {Title: "Broken", Slug: "???"},
		},
		Submenu: map[string]menu.Group{
			"настройки": {
				5:  {Title: "Общие", Slug: "общие"},
				10: {Title: "Odd", Slug: "!!"},
			},
			"???": {
				5: {Title: "Orphan", Slug: "orphan"},
			},
		},
	}
	eng := menu.New()
	eng.Snapshot(live)
	items := eng.Items()

	var gotIDs []string
	for _, it := range items {
		gotIDs = append(gotIDs, it.ID)
	}
	if want := []string{"настроики", "плагины"}; !reflect.DeepEqual(gotIDs, want) {
		t.Fatalf("ids = %q, want %q", gotIDs, want)
	}
	if len(items[0].Submenu) != 1 || items[0].Submenu[0].ID != "настроики-общие" {
		t.Errorf("submenu = %+v", items[0].Submenu)
	}

	if removed := eng.Prune(live, settings.Exclusions{"": true, "-orphan": true}); removed != 0 {
		t.Errorf("entries without an id must never be pruned, removed %d", removed)
	}
	if removed := eng.Prune(live, settings.Exclusions{"плагины": true}); removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if _, ok := live.Top[20]; ok {
		t.Error("плагины should be removed")
	}
	if _, ok := live.Top[30]; !ok {
		t.Error("entry with an unusable slug must stay")
	}
}
