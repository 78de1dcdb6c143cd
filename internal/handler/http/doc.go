// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the catalog service.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API, plus the websocket endpoint that pushes collection snapshots to
// attached clients. Cross-cutting concerns such as request tracing and access
// logging are handled in this package before requests are delegated to the
// service layer.
package http
