package runtime

// AppContext is the creation metadata shared by every tree mounted under
// one application. It owns the application-level store, which acts as the
// outermost link of every provision chain.
type AppContext struct {
	provides *Store
}

// Provides returns the application-level store.
func (c *AppContext) Provides() *Store {
	return c.provides
}

// App is the application object. It outlives the component instances
// created under it and carries the application-level store used when no
// component provision matches, or when injection runs outside the tree via
// RunWithContext.
type App struct {
	name    string
	context *AppContext
}

// NewApp creates an application with an empty application-level store.
func NewApp(name string) *App {
	return &App{
		name:    name,
		context: &AppContext{provides: NewStore(nil)},
	}
}

// Name returns the application's debug name.
func (a *App) Name() string {
	return a.name
}

// Context returns the application creation metadata.
func (a *App) Context() *AppContext {
	return a.context
}

// Provide writes value under key into the application-level store, making
// it visible to every tree mounted under this app and to RunWithContext
// scopes. Returns the app for chaining.
func (a *App) Provide(key, value any) *App {
	a.context.provides.Set(key, value)
	return a
}

// RunWithContext runs fn with this app as the active injection scope.
// Inside fn, Inject resolves directly against the application-level store,
// bypassing any component instance — this is how injection works outside
// the tree, scoped to a specific application.
//
// The previous scope is restored on every exit path, so scopes nest and
// re-enter safely:
//
//	appA.RunWithContext(func() {
//	    appB.RunWithContext(func() { /* B wins here */ })
//	    // A wins again here
//	})
func (a *App) RunWithContext(fn func()) {
	end := observeAppScope(a.name)

	old := setCurrentApp(a)
	defer func() {
		setCurrentApp(old)
		end()
	}()
	fn()
}

// RunWith runs fn under app's injection scope and returns its result.
// Generic convenience over App.RunWithContext.
func RunWith[T any](app *App, fn func() T) T {
	var out T
	app.RunWithContext(func() {
		out = fn()
	})
	return out
}
