package promptgen

import (
	"io/fs"

	"github.com/goliatone/go-promptgen/pkg/renderers/html"
)

// RuntimeAssetsFS exposes the stylesheet and browser runtime (live
// validation, clipboard copy, toast) so Go applications can serve them
// outside the viewer component.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(promptgen.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	return html.AssetsFS()
}
