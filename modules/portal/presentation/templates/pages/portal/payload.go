package portal

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

var payloadFormatter = chromahtml.New(
	chromahtml.WithClasses(false),
	chromahtml.TabWidth(2),
)

func highlightJSON(src string) (string, error) {
	lexer := lexers.Get("json")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, src)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := payloadFormatter.Format(&sb, styles.Get("github"), iterator); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Payload renders JSON with syntax highlighting, or as plain escaped text
// when the highlighter fails.
func Payload(src string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="event-payload" data-role="payload">`); err != nil {
			return err
		}
		highlighted, err := highlightJSON(src)
		if err != nil {
			highlighted = "<pre><code>" + templ.EscapeString(src) + "</code></pre>"
		}
		if _, err := io.WriteString(w, highlighted); err != nil {
			return err
		}
		_, err = io.WriteString(w, "</div>")
		return err
	})
}
