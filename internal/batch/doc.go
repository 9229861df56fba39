// Package batch converts payloads to footprints in fixed-size batches.
//
// A Processor splits its input into batches of at most BatchSize items and
// hands each batch to a callback, either one after the other or with a
// bounded number of batches in flight. ConvertAll builds on it to map many
// iLEAP payloads with one company identity, keeping results in input order.
package batch
