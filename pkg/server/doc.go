// Package server exposes style resolution over HTTP.
//
// # Endpoints
//
//	GET  /healthz                 build information
//	GET  /palettes                every registered palette
//	GET  /palettes/{name}?count=n the first n colors of a palette
//	POST /resolve                 resolve a chart configuration
//
// POST /resolve accepts the TOML configuration format of package config, or
// its JSON form when the request has Content-Type application/json. Query
// parameters select the interaction context and output:
//
//	select=in        selectedKey
//	highlight=out    highlightedKey
//	encoding=bar     encoding legend entries annotate (default bar)
//	format=json|svg  response format (default json)
//
// Errors are reported as {"code": ..., "message": ...} with a status derived
// from the error code. Successful palette and resolve responses are cached,
// keyed by build version, when a cache is configured.
package server
