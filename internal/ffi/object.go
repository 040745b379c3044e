package ffi

// Object is an application instance living in a shared library. Each
// lifecycle method forwards to the matching export; exports the library
// lacks are reported by MissingCapabilities and are no-ops.
type Object struct {
	handle  uintptr
	prefix  string
	missing []string

	fnCreate  func(uintptr)
	fnRender  func(uintptr)
	fnResize  func(uintptr, int32, int32)
	fnPause   func(uintptr)
	fnResume  func(uintptr)
	fnDispose func(uintptr)
}

func bindObject(handle uintptr, prefix string, symbol func(string) uintptr) *Object {
	o := &Object{handle: handle, prefix: prefix}

	bind := func(fptr any, capability string) {
		addr := symbol(prefix + "_" + capability)
		if addr == 0 {
			o.missing = append(o.missing, capability)
			return
		}
		bindFunc(fptr, addr)
	}
	bind(&o.fnCreate, "create")
	bind(&o.fnRender, "render")
	bind(&o.fnResize, "resize")
	bind(&o.fnPause, "pause")
	bind(&o.fnResume, "resume")
	bind(&o.fnDispose, "dispose")

	return o
}

// Prefix returns the symbol prefix the object was bound with.
func (o *Object) Prefix() string {
	return o.prefix
}

// MissingCapabilities returns the lifecycle exports the library lacks.
func (o *Object) MissingCapabilities() []string {
	return o.missing
}

func (o *Object) Create() {
	if o.fnCreate != nil && o.handle != 0 {
		o.fnCreate(o.handle)
	}
}

func (o *Object) Render() {
	if o.fnRender != nil && o.handle != 0 {
		o.fnRender(o.handle)
	}
}

func (o *Object) Resize(width, height int) {
	if o.fnResize != nil && o.handle != 0 {
		o.fnResize(o.handle, int32(width), int32(height))
	}
}

func (o *Object) Pause() {
	if o.fnPause != nil && o.handle != 0 {
		o.fnPause(o.handle)
	}
}

func (o *Object) Resume() {
	if o.fnResume != nil && o.handle != 0 {
		o.fnResume(o.handle)
	}
}

// Dispose releases the native instance. The handle is invalid afterwards and
// every further call is a no-op.
func (o *Object) Dispose() {
	if o.fnDispose != nil && o.handle != 0 {
		o.fnDispose(o.handle)
	}
	o.handle = 0
}
