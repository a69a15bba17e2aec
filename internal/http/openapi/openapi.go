// Package openapi embeds the OpenAPI YAML specification.
package openapi

import _ "embed"

// YAML contains the embedded OpenAPI document.
//
// YAML is exported so the HTTP layer can serve it verbatim.
//
//go:embed openapi.yaml
var YAML []byte
