// Package types defines the book record, edit and sort request types,
// catalog statistics, configuration, and the standard errors shared by the
// bookshop catalog, console, and export packages.
package types
