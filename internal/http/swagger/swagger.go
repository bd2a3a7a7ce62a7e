package swagger

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	apicontract "github.com/tuanvumaihuynh/korpstock/api-contract"
)

const (
	// DocsPath serves the Swagger UI.
	DocsPath = "/docs"

	// SpecPath serves the raw OpenAPI document.
	SpecPath = "/docs/openapi.yml"

	uiVersion = "5.29.3"
)

// Register mounts the Swagger UI and the embedded OpenAPI document on r.
func Register(r chi.Router) {
	page := mustRenderPage(pageData{
		Title:     "KorpStock API",
		SpecURL:   SpecPath,
		UIVersion: uiVersion,
	})

	r.Get(DocsPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		//nolint:errcheck
		w.Write(page)
	})

	specBytes := apicontract.GetSpecBytes()
	r.Get(SpecPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.WriteHeader(http.StatusOK)
		//nolint:errcheck
		w.Write(specBytes)
	})
}

type pageData struct {
	Title     string
	SpecURL   string
	UIVersion string
}

var pageTemplate = template.Must(template.New("swagger").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <meta name="description" content="{{.Title}}" />
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@{{.UIVersion}}/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@{{.UIVersion}}/swagger-ui-bundle.js" crossorigin></script>
<script>
  window.onload = () => {
    window.ui = SwaggerUIBundle({
      url: {{.SpecURL}},
      dom_id: '#swagger-ui',
      deepLinking: true,
      displayRequestDuration: true,
    });
  };
</script>
</body>
</html>
`))

func mustRenderPage(data pageData) []byte {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
