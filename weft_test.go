package weft_test

import (
	"testing"

	"github.com/weft-ui/weft"
)

// End-to-end through the public surface: an app provides configuration, a
// tree shadows part of it, and descendants inject with typed tokens.
func TestProvideInjectThroughPublicAPI(t *testing.T) {
	type theme struct{ Name string }
	themeKey := weft.NewKey[*theme]("theme")

	app := weft.NewApp("docs")
	app.Provide("locale", "en")

	root := weft.NewRootInstance("root", app)
	layout := weft.NewInstance("layout", root)
	sidebar := weft.NewInstance("sidebar", layout)
	content := weft.NewInstance("content", layout)

	weft.WithSetupInstance(layout, func() {
		themeKey.Provide(&theme{Name: "dark"})
	})
	weft.WithSetupInstance(sidebar, func() {
		weft.Provide("locale", "fr")
	})

	weft.WithSetupInstance(weft.NewInstance("nav", sidebar), func() {
		if v, _ := weft.Inject("locale"); v != "fr" {
			t.Errorf("sidebar subtree should see the shadow, got %v", v)
		}
		th, ok := themeKey.Use()
		if !ok || th.Name != "dark" {
			t.Errorf("typed token should resolve through the chain, got %+v", th)
		}
	})

	weft.WithSetupInstance(weft.NewInstance("article", content), func() {
		if v, _ := weft.Inject("locale"); v != "en" {
			t.Errorf("content subtree should see the app value, got %v", v)
		}
	})
}

func TestRunWithOutsideTree(t *testing.T) {
	app := weft.NewApp("jobs")
	app.Provide("db", "connection")

	if weft.HasInjectionContext() {
		t.Fatal("no context expected outside any scope")
	}

	got := weft.RunWith(app, func() string {
		v, _ := weft.Inject("db")
		return v.(string)
	})
	if got != "connection" {
		t.Errorf("expected app-scoped resolution, got %q", got)
	}
}
