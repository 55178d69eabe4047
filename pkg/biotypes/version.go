// Package biotypes carries module-level metadata shared by the
// libraries and the genocat CLI.
package biotypes

const Version = "0.4.1"
