// Package cli implements the planner command-line interface.
//
// The CLI is the local consumer of the repositories: subcommands map
// one-to-one onto repository operations (add/list/day/upcoming/show/delete
// for events, settings/settings set for preferences) plus ICS export and
// config bootstrapping. Output is text or JSON via --format.
package cli
