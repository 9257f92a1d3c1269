package assets

import "embed"

// Templates holds the starter files that 'prompt2 init' copies into the
// current directory.
//
//go:embed templates
var Templates embed.FS
