// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated means the handlers carried no transport to serve.
var errNoServersAreCreated = errors.New("server: neither HTTP nor gRPC handler is configured")
