package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFiles embed.FS

// staticFS returns the embedded assets rooted at the static directory.
func staticFS() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// StaticFS exposes the embedded assets, for export.
func StaticFS() fs.FS { return staticFS() }

// documentTemplate is the Go html/template wrapping every page.
const documentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="preconnect" href="https://fonts.googleapis.com">
  <link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Mansalva&display=swap">
  <link rel="stylesheet" href="/static/site.css">
</head>
<body>
  <div id="root">{{.Body}}</div>
  {{if .Live}}<script src="/static/live.js"></script>{{end}}
</body>
</html>`
