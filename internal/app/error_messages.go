// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable wording shared by the server
// handlers and the client commands.
//
// Msg* constants are written into HTTP error bodies by the server. UserMessage
// turns any error reaching the client surface into the text shown to the
// user.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEnvelope is returned when an envelope is too short or its
	// salt/IV header is not hex.
	MsgInvalidEnvelope = "malformed envelope"

	// MsgInvalidLoginPassword is returned when the login/password pair does
	// not match an account.
	MsgInvalidLoginPassword = "invalid login/password"

	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is missing,
	// expired or fails verification.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when an authenticated route runs
	// without a user id in the request context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgAccessDenied is returned when the caller addresses an item owned by
	// another user.
	MsgAccessDenied = "access denied"

	MsgLoginAlreadyExists = "login already exists"

	// MsgItemNotFound is returned when the addressed vault item does not
	// exist.
	MsgItemNotFound = "vault item was not found"

	MsgItemAlreadyExists = "vault item already exists"
)
