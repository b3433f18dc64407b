// Package reconcile drives the catalog build. Sources are consumed as an
// ordered list of phases sharing one store, one logger, and the matching
// settings; each phase owns its own parsing and match strategy while the
// runner owns ordering, timing, and failure handling. A phase failure
// stops the run; later phases depend on the rows earlier phases wrote.
package reconcile
