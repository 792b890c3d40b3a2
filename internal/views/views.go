package views

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/template/html/v2"

	"github.com/example/alhayat/internal/content"
)

//go:embed templates
var files embed.FS

// New returns the template engine for every page. Template names are paths
// below templates/ without the extension, e.g. "public/home".
func New() *html.Engine {
	root, err := fs.Sub(files, "templates")
	if err != nil {
		panic(err)
	}

	engine := html.NewFileSystem(http.FS(root), ".html")
	engine.AddFuncMap(Funcs())
	return engine
}

// Funcs are the helpers available in templates.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"icon": content.ParseIcon,
		// raw renders trusted markup unescaped; only blog content written by
		// staff goes through it.
		"raw": func(s string) template.HTML {
			return template.HTML(s)
		},
		"year": func() int {
			return time.Now().Year()
		},
		"paragraphs": func(s string) []string {
			var out []string
			for _, p := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n\n") {
				if p = strings.TrimSpace(p); p != "" {
					out = append(out, p)
				}
			}
			return out
		},
		"active": func(current, path string) bool {
			if path == "/" {
				return current == "/"
			}
			return current == path || strings.HasPrefix(current, path+"/")
		},
		"add": func(a, b int) int {
			return a + b
		},
	}
}
