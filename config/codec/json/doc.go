// Package json provides the JSON codec used by the config package.
//
// Decoding goes through encoding/json, so `json` struct tags apply and the
// target's existing field values survive for keys the document omits.
// Encoding always produces indented output with a trailing newline.
//
// Sections are addressed with colon-separated paths. The path syntax is checked
// with the github.com/goccy/go-yaml path parser and each key is then looked up in
// the raw document, so the section is decoded from its original text:
//
//	codec := json.NewCodec()
//	var api APIConfig
//	err := codec.Parse(data, &api, "services:api") // "$.services.api"
//
// Path Conversion:
//   - Empty section "" -> decode entire document
//   - Single key "key" -> "$.key"
//   - Nested section "api:permissions" -> "$.api.permissions"
package json
