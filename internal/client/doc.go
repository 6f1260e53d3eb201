// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the resolver command line runtime.
//
// It resolves a declaration file either in process or through a remote
// resolver server and hands the result to the packaging step, as one file
// per variant or as a single document on stdout. In remote mode it can also
// print the variants the server resolved from its own declaration.
package client
