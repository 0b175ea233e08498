package http

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/MKhiriev/doc-query/internal/logger"
	"github.com/MKhiriev/doc-query/internal/utils"
)

const (
	loginPage   = "login"
	welcomePage = "welcome"
	noticePage  = "notice"
	errorPage   = "error"
)

// page is the data rendered into every surface template.
type page struct {
	Title          string
	Heading        string
	Message        string
	LoginURL       string
	RefreshURL     string
	RefreshSeconds int
}

var pages = template.Must(template.New("pages").Parse(`
{{define "head"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
{{if .RefreshURL}}<meta http-equiv="refresh" content="{{.RefreshSeconds}};url={{.RefreshURL}}">{{end}}
</head>
<body>{{end}}

{{define "foot"}}</body>
</html>{{end}}

{{define "login"}}{{template "head" .}}
<h1>doc-query</h1>
<p>{{.Message}}</p>
<p><a href="{{.LoginURL}}">Sign in with Google</a></p>
{{template "foot" .}}{{end}}

{{define "welcome"}}{{template "head" .}}
<h1>{{.Heading}}</h1>
<p>{{.Message}}</p>
<p><a href="/logout">Log out</a></p>
{{template "foot" .}}{{end}}

{{define "notice"}}{{template "head" .}}
<h1>{{.Title}}</h1>
<p role="alert">{{.Message}}</p>
<p><a href="{{.RefreshURL}}">Try again</a></p>
{{template "foot" .}}{{end}}

{{define "error"}}{{template "head" .}}
<h1>{{.Title}}</h1>
<p>{{.Message}}</p>
{{template "foot" .}}{{end}}
`))

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data page, status int) {
	log := logger.FromRequest(r)

	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		log.Err(err).Str("func", "*Handler.render").Str("page", name).Msg("error rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if _, err := utils.WriteHTML(w, buf.Bytes(), status); err != nil {
		log.Err(err).Str("func", "*Handler.render").Str("page", name).Msg("error writing page")
	}
}
