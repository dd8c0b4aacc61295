// Package syncer runs the pull-and-normalize cycle: check that the
// translation client is installed, make sure every expected locale file
// exists, pull translations, then rewrite each file's header and top-level
// language key.
package syncer
