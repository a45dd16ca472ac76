// Package dataprocessing implements the bid sheet ingestion pipeline:
// reading the raw grid out of the workbook, normalizing rows into canonical
// bid records, filtering structurally incomplete records, classifying
// competitiveness ratings, and deriving route and carrier analytics.
//
// Every stage is a pure function over its input; the only state in the
// package is the Loader's content-hash memo of the last ingestion result.
package dataprocessing
