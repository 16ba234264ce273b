// Package exporter writes analysis reports to flat files. CSV output
// carries a UTF-8 BOM so Excel opens it without an import dialog,
// matching how field teams consume the reports.
package exporter
