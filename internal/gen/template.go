package gen

import "text/template"

var bridgeTemplate = template.Must(template.New("bridge").Parse(
	`// Code generated by enum-bridge{{if .Source}} from {{.Source}}{{end}}. DO NOT EDIT.

package {{.PackageName}}

import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{range .Tags}}
{{if $.GenerateComments}}// {{.}} tags the converters declared with tag {{.}}.
{{end}}type {{.}} struct{}
{{end}}
var (
{{- range .Converters}}
{{if $.GenerateComments}}	// {{.Name}} converts between {{.Internal.Label}} and {{.External.Label}}.
{{end}}	{{.Name}} = bidi.MustBuild[{{.Tag}}](
		bidi.MustDomain({{printf "%q" .Internal.Label}},
{{range .Internal.Members}}			{{.}},
{{end}}		),
		bidi.MustDomain({{printf "%q" .External.Label}},
{{range .External.Members}}			{{.}},
{{end}}		),
		[]bidi.Rule[{{.Internal.GoType}}, {{.External.GoType}}]{
{{range .Rules}}			{{.}},
{{end}}		},
	)
{{- end}}
)

{{if .GenerateComments}}// Register publishes every converter declared in this file in r.
{{end}}func Register(r *bidi.Registry) error {
{{- range .Converters}}
	if err := bidi.Register(r, {{.Name}}); err != nil {
		return err
	}
{{- end}}

	return nil
}
`))
