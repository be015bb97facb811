// Package textutil provides the string cleanup shared by classification and
// path planning: release-tag stripping, separator normalization, and
// filesystem-safe filename sanitization.
package textutil
