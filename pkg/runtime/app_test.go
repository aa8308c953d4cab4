package runtime

import "testing"

func TestAppProvideChains(t *testing.T) {
	app := NewApp("test").
		Provide("a", 1).
		Provide("b", 2)

	if v, _ := app.Context().Provides().Get("a"); v != 1 {
		t.Errorf("expected 1, got %v", v)
	}
	if v, _ := app.Context().Provides().Get("b"); v != 2 {
		t.Errorf("expected 2, got %v", v)
	}
}

func TestRunWithContextNesting(t *testing.T) {
	a := NewApp("a")
	a.Provide("k", "from-a")
	b := NewApp("b")
	b.Provide("k", "from-b")

	a.RunWithContext(func() {
		if CurrentApp() != a {
			t.Error("a should be the active scope")
		}
		b.RunWithContext(func() {
			if CurrentApp() != b {
				t.Error("b should win inside the nested scope")
			}
			if v, _ := Inject("k"); v != "from-b" {
				t.Errorf("expected from-b, got %v", v)
			}
		})
		if CurrentApp() != a {
			t.Error("a must be restored after the nested scope")
		}
		if v, _ := Inject("k"); v != "from-a" {
			t.Errorf("expected from-a, got %v", v)
		}
	})

	if CurrentApp() != nil {
		t.Error("no scope should remain active")
	}
}

func TestRunWithContextRestoresOnPanic(t *testing.T) {
	app := NewApp("test")

	func() {
		defer func() { _ = recover() }()
		app.RunWithContext(func() {
			panic("scope body failed")
		})
	}()

	if CurrentApp() != nil {
		t.Error("app scope must be restored even when the body panics")
	}
}

func TestRunWithReturnsValue(t *testing.T) {
	app := NewApp("test")
	app.Provide("n", 21)

	got := RunWith(app, func() int {
		v, _ := Inject("n")
		return v.(int) * 2
	})
	if got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
}

func TestAppsAreIsolated(t *testing.T) {
	a := NewApp("a")
	a.Provide("k", "from-a")
	b := NewApp("b")

	b.RunWithContext(func() {
		if _, ok := Inject("k"); ok {
			t.Error("apps must not share application-level stores")
		}
	})
}
