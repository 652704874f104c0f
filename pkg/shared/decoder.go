package shared

import (
	"github.com/go-playground/form"
)

// Decoder decodes url.Values into structs tagged with `form:"..."`.
var Decoder = form.NewDecoder()
