// Copyright 2025 Esteban Alvarez. All Rights Reserved.
//
// Created: October 2025
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package transport contains the boundary adapters that translate foreign
// request shapes into decision-engine calls: the native binary protocol,
// HTTP/JSON, gRPC, and a Redis RESP subset. All adapters share one Handle,
// so rate-limit state for a key is shared across every transport.
package transport

import (
	"context"
	"fmt"
	"net"
)

// A Transport accepts client traffic on its own listener and forwards
// decoded requests to the owner. Serve blocks until ctx is canceled or the
// listener fails.
type Transport interface {
	Name() string
	Serve(ctx context.Context) error
}

func joinHostPort(host string, port int) string {
	return net.JoinHostPort(host, fmt.Sprintf("%d", port))
}

// closeOnDone shuts a listener when ctx is canceled so the accept loop
// unblocks promptly.
func closeOnDone(ctx context.Context, closer interface{ Close() error }) {
	go func() {
		<-ctx.Done()
		_ = closer.Close()
	}()
}
