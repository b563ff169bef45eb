// Package report renders study outputs for humans: a plotted voltage
// profile per section and the classic section-by-section result table.
package report
