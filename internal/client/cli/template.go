package cli

import (
	"fmt"
	"io"
	"text/template"
	"time"
)

const resourceTemplate = `
=== Resource Details ===

Name:     {{.Name}}
ID:       {{.ID}}
Type:     {{.Type}}
Folder:   {{folder .FolderID}}
Favorite: {{if .Favorite}}yes{{else}}no{{end}}
Created:  {{created .CreatedOn}}
{{- if .Description }}
Notes:    {{.Description}}
{{- end}}

Value:
---
{{.Value}}
---
`

const dataSourceTemplate = `
=== Data Source Override ===

Connection: {{.Redacted}}
Database:   {{.DatabaseName}}
Enabled:    {{if .Enabled}}yes{{else}}no{{end}}
`

var templateFuncs = template.FuncMap{
	"folder": func(id *string) string {
		if id == nil || *id == "" {
			return "Root"
		}
		return *id
	},
	"created": func(t time.Time) string {
		if t.IsZero() {
			return "unknown"
		}
		return t.Format(time.RFC3339)
	},
}

var (
	resourceTmpl   = template.Must(template.New("resource").Funcs(templateFuncs).Parse(resourceTemplate))
	dataSourceTmpl = template.Must(template.New("datasource").Parse(dataSourceTemplate))
)

func render(w io.Writer, tmpl *template.Template, data any) error {
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", tmpl.Name(), err)
	}
	return nil
}
