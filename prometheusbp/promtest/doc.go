// Package promtest provides test helpers to check prometheus metrics
// exported by the packages of this module.
package promtest
