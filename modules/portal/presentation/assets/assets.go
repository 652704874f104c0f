// Package assets embeds the portal stylesheet and script and serves them
// under content-hashed names.
package assets

import (
	"embed"

	"github.com/benbjohnson/hashfs"
)

//go:embed css js
var FS embed.FS

var HashFS = hashfs.NewFS(FS)

// Path returns the public URL of an embedded asset, with its content hash.
func Path(name string) string {
	return "/assets/" + HashFS.HashName(name)
}
