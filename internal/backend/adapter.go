// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package backend talks to the grocer-me REST API.
// It defines the API contract the CLI depends on and an HTTP implementation
// that authenticates with the session cookie held by internal/session.
package backend

import "context"

// Identity is the slice of the API the auth cache needs.
type Identity interface {
	// Me returns the profile for the session cookie. Any failure, including a
	// 401, is an error. It never retries.
	Me(ctx context.Context) (*User, error)
}

// API defines backend operations the CLI depends on.
// Implementations may call real HTTP endpoints or provide fakes for tests.
type API interface {
	Identity

	// SignIn exchanges credentials for a session cookie and stores it.
	SignIn(ctx context.Context, req SignInRequest) (*User, error)
	// SignUp creates an account, then behaves like SignIn.
	SignUp(ctx context.Context, req SignUpRequest) (*User, error)

	CreateList(ctx context.Context, req CreateListRequest) (*List, error)
	GetLists(ctx context.Context) ([]List, error)
	GetList(ctx context.Context, id string) (*List, error)
	UpdateList(ctx context.Context, id string, req UpdateListRequest) (*List, error)
	DeleteList(ctx context.Context, id string) error

	AddListItem(ctx context.Context, listID string, req AddListItemRequest) (*List, error)
	UpdateListItem(ctx context.Context, listID string, req UpdateListItemRequest) (*List, error)
	UpdateListItemChecked(ctx context.Context, listID string, index int, checked bool) (*List, error)
	DeleteListItem(ctx context.Context, listID string, index int) (*List, error)

	// ShareList adds the current user to the list's shared_with set.
	ShareList(ctx context.Context, listID string) (*List, error)
}
