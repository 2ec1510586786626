// Package internal contains the implementation packages of the fusionsite
// binary.
//
// # Package Organization
//
//   - content: business facts, service catalogues and page copy
//   - animation: entrance animation presets and their stylesheet
//   - components: layout and section components rendered with templ
//   - wizard: the three-step quote request state machine
//   - pages: the route table and page composition
//   - session: per-visitor wizard storage and the session cookie
//   - quote: delivery of submitted quote requests (log, SQLite)
//   - server: HTTP routes, middleware, metrics and live reload
//   - export: static site export with a sitemap
//   - accessibility: audits of rendered pages
//   - assets: embedded CSS, JavaScript and icons
//   - watcher: debounced file watching for live reload
//   - config, logging, errors, version: shared infrastructure
//
// Dependencies point downward in that list. content and animation import
// nothing else from internal; server and export sit at the top.
package internal
