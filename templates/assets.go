package templates

import (
	"html/template"
	"path"

	"github.com/benbjohnson/hashfs"
)

// AssetFuncs returns template helper functions for referencing static assets
// by their content-hashed names, so asset URLs change whenever their contents
// do:
//
//	<link rel="stylesheet" href="{{static "css/main.css"}}">
func AssetFuncs(prefix string, hfs *hashfs.FS) template.FuncMap {
	return template.FuncMap{
		"static": func(name string) string {
			return path.Join("/", prefix, hfs.HashName(name))
		},
	}
}
