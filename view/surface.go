// Package view coordinates the loader, fact picker and rendering surface.
package view

import "skylight/gallery"

// Surface is the set of display regions the controller renders into. The
// regions are opaque sinks: the only contract is "set contents" and "set
// visibility", implementations decide what that means (the HTTP server
// keeps a snapshot and broadcasts events, tests record calls).
type Surface interface {
	SetLoading(loading bool)
	SetFact(fact string)
	RenderGallery(cards []gallery.Card)
	ShowDetail(detail gallery.Detail)
	HideDetail()
	ShowError(message string)
}
