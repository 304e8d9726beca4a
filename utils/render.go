package utils

import (
	"bytes"
	"html/template"
)

// Templates holds the parsed template set shared by the gin renderer and the
// AJAX endpoints that embed rendered fragments in JSON responses.
var Templates *template.Template

func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"csrf_token": CSRFToken,
		"price":      FormatPrice,
	}
}

// InitTemplates parses every template matching the glob, e.g. "templates/*.html".
func InitTemplates(glob string) error {
	tmpl, err := template.New("").Funcs(TemplateFuncs()).ParseGlob(glob)
	if err != nil {
		return err
	}
	Templates = tmpl
	return nil
}

// RenderToString executes a named template into a string, for the
// {ok, count, html} and {ok:false, html} AJAX contracts.
func RenderToString(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := Templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
