// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

type otherKey string

func TestContextKeyString(t *testing.T) {
	if UserIDCtxKey.String() != "userID" || TraceIDCtxKey.String() != "traceID" {
		t.Errorf("unexpected key names %q %q", UserIDCtxKey, TraceIDCtxKey)
	}
}

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID int64
		wantOK bool
	}{
		{name: "set by WithUserID", ctx: WithUserID(context.Background(), 42), wantID: 42, wantOK: true},
		{name: "zero id is still present", ctx: WithUserID(context.Background(), 0), wantOK: true},
		{name: "missing", ctx: context.Background()},
		{name: "wrong type", ctx: context.WithValue(context.Background(), UserIDCtxKey, "42")},
		{name: "string key does not collide", ctx: context.WithValue(context.Background(), otherKey("userID"), int64(42))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, ok := GetUserIDFromContext(tt.ctx)
			if ok != tt.wantOK || userID != tt.wantID {
				t.Errorf("got (%d, %v), want (%d, %v)", userID, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestTraceID(t *testing.T) {
	if _, ok := GetTraceIDFromContext(context.Background()); ok {
		t.Fatal("expected no trace id in empty context")
	}
	if _, ok := GetTraceIDFromContext(WithTraceID(context.Background(), "")); ok {
		t.Fatal("expected empty trace id to be reported as missing")
	}

	traceID, ok := GetTraceIDFromContext(WithTraceID(context.Background(), "trace-1"))
	if !ok || traceID != "trace-1" {
		t.Errorf("expected trace-1, got %q %v", traceID, ok)
	}
}
