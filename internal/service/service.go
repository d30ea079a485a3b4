// Package service contains the business logic.
//
// It sits between the handler and the underlying phone-number and
// country-metadata libraries. It receives validated data from the
// handler, performs the lookup/validation operations, and assembles
// the response records.
package service
