// Package preflight provides readiness checks for the filesystem paths a
// catalog build depends on.
//
// The build command calls RunAll before touching the catalog database. If
// any check fails, the build aborts instead of producing a partial catalog
// from unreadable sources. Source checks are gated by configuration:
// unconfigured sources are skipped, but at least one must be configured.
package preflight
