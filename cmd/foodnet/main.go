// Package main provides the entry point for the foodnet CLI.
//
// foodnet trains a small convolutional network to classify food photos,
// scores a saved model against a held-out directory, and labels single
// images.
//
// Usage:
//
//	foodnet train
//	foodnet evaluate <model-dir>
//	foodnet predict <model-dir> <image>...
//
// See --help for all available options.
package main

// main is the entry point for foodnet.
func main() {
	Execute()
}
