package runtime

import "sync/atomic"

var nextInstanceID atomic.Uint64

// Instance is a node in the component tree, holding the state the provision
// core needs from the surrounding framework: the parent link, the provision
// store, the application context on roots, and the public proxy handed to
// factory defaults.
//
// An instance has no local store until its first Provide: Provides resolves
// to the parent's current store, so siblings that never provide keep
// sharing the ancestor chain untouched, no matter in which order instances
// are created and set up.
type Instance struct {
	id   uint64
	name string

	// parent is the owning instance, nil for a root.
	parent *Instance

	// provides is the instance's own store. Meaningful only when forked is
	// set; until then Provides resolves through the parent.
	provides *Store

	// forked reports whether this instance owns provides. False means the
	// instance still shares an ancestor's store and must fork before its
	// first write.
	forked bool

	// appContext is the application creation metadata. Set on root
	// instances only; descendants reach the app store through the chain.
	appContext *AppContext

	// proxy is the public-facing object passed to factory defaults.
	proxy any
}

// NewInstance creates an instance under parent. The new instance shares the
// parent's store until its first Provide. A nil parent creates a detached
// instance owning an empty root store.
func NewInstance(name string, parent *Instance) *Instance {
	i := &Instance{
		id:     nextInstanceID.Add(1),
		name:   name,
		parent: parent,
	}
	if parent == nil {
		i.provides = NewStore(nil)
		i.forked = true
	}
	return i
}

// NewRootInstance creates a tree root bound to app. The root's store is
// pre-forked from the application store, so app-level provisions are
// visible to the whole tree while app.Provide never sees tree writes.
func NewRootInstance(name string, app *App) *Instance {
	i := &Instance{
		id:   nextInstanceID.Add(1),
		name: name,
	}
	if app != nil {
		i.appContext = app.Context()
		i.provides = i.appContext.Provides().Fork()
	} else {
		i.provides = NewStore(nil)
	}
	i.forked = true
	return i
}

// ID returns the unique identifier for this instance.
func (i *Instance) ID() uint64 {
	return i.id
}

// Name returns the instance's debug name.
func (i *Instance) Name() string {
	return i.name
}

// Parent returns the owning instance, or nil for a root.
func (i *Instance) Parent() *Instance {
	return i.parent
}

// Provides returns the store visible to this instance's descendants. Before
// the first Provide this resolves to the parent's current store, not a
// copy, so ancestor forks that happen after this instance was created are
// still picked up.
func (i *Instance) Provides() *Store {
	if i.forked || i.parent == nil {
		return i.provides
	}
	return i.parent.Provides()
}

// AppContext returns the application creation metadata, or nil on non-root
// instances.
func (i *Instance) AppContext() *AppContext {
	return i.appContext
}

// Root walks the parent chain to the tree root.
func (i *Instance) Root() *Instance {
	r := i
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Proxy returns the instance's public-facing proxy object, or nil.
func (i *Instance) Proxy() any {
	return i.proxy
}

// SetProxy sets the public-facing proxy object passed to factory defaults.
func (i *Instance) SetProxy(proxy any) {
	i.proxy = proxy
}
