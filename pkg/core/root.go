package core

// MountRoot inflates a widget as the root of a new element tree and mounts
// it. The caller owns the returned element and must Unmount it when done.
func MountRoot(widget Widget, owner *BuildOwner) Element {
	if widget == nil {
		return nil
	}
	element := inflateWidget(widget, owner)
	element.Mount(nil, nil)
	return element
}
