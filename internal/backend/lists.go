package backend

import (
	"context"
	"net/http"
	"net/url"

	apperrors "grocer/cli/internal/errors"
)

// Errors from these calls reach the caller unmodified: they carry the API's own
// message ("List not found", "Invalid item index") which the UI shows as is.

func listPath(id string) string { return "/lists/" + url.PathEscape(id) }

func requireID(id string) error {
	if id == "" {
		return apperrors.New(apperrors.Validation, "list id is required")
	}
	return nil
}

// CreateList calls POST /lists.
func (h *HTTP) CreateList(ctx context.Context, req CreateListRequest) (*List, error) {
	if err := h.check(req); err != nil {
		return nil, err
	}
	var l List
	if err := h.do(ctx, http.MethodPost, "/lists", req, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// GetLists calls GET /lists: every list the user owns or has joined.
func (h *HTTP) GetLists(ctx context.Context) ([]List, error) {
	var ls []List
	if err := h.do(ctx, http.MethodGet, "/lists", nil, &ls); err != nil {
		return nil, err
	}
	return ls, nil
}

// GetList calls GET /lists/{id}.
func (h *HTTP) GetList(ctx context.Context, id string) (*List, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	var l List
	if err := h.do(ctx, http.MethodGet, listPath(id), nil, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// UpdateList calls PUT /lists/{id}.
func (h *HTTP) UpdateList(ctx context.Context, id string, req UpdateListRequest) (*List, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	if err := h.check(req); err != nil {
		return nil, err
	}
	var l List
	if err := h.do(ctx, http.MethodPut, listPath(id), req, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// DeleteList calls DELETE /lists/{id}.
func (h *HTTP) DeleteList(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return h.do(ctx, http.MethodDelete, listPath(id), nil, nil)
}

// AddListItem calls POST /lists/{id}/items.
func (h *HTTP) AddListItem(ctx context.Context, listID string, req AddListItemRequest) (*List, error) {
	if err := requireID(listID); err != nil {
		return nil, err
	}
	if err := h.check(req); err != nil {
		return nil, err
	}
	var l List
	if err := h.do(ctx, http.MethodPost, listPath(listID)+"/items", req, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// UpdateListItem calls PUT /lists/{id}/items.
func (h *HTTP) UpdateListItem(ctx context.Context, listID string, req UpdateListItemRequest) (*List, error) {
	if err := requireID(listID); err != nil {
		return nil, err
	}
	if err := h.check(req); err != nil {
		return nil, err
	}
	var l List
	if err := h.do(ctx, http.MethodPut, listPath(listID)+"/items", req, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// UpdateListItemChecked calls PUT /lists/{id}/items/checked.
func (h *HTTP) UpdateListItemChecked(ctx context.Context, listID string, index int, checked bool) (*List, error) {
	if err := requireID(listID); err != nil {
		return nil, err
	}
	req := updateListItemCheckedRequest{Index: index, Checked: checked}
	if err := h.check(req); err != nil {
		return nil, err
	}
	var l List
	if err := h.do(ctx, http.MethodPut, listPath(listID)+"/items/checked", req, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// DeleteListItem calls DELETE /lists/{id}/items with {index} in the body.
func (h *HTTP) DeleteListItem(ctx context.Context, listID string, index int) (*List, error) {
	if err := requireID(listID); err != nil {
		return nil, err
	}
	req := deleteListItemRequest{Index: index}
	if err := h.check(req); err != nil {
		return nil, err
	}
	var l List
	if err := h.do(ctx, http.MethodDelete, listPath(listID)+"/items", req, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// ShareList calls POST /lists/share/{id}, joining the current user to the list.
func (h *HTTP) ShareList(ctx context.Context, listID string) (*List, error) {
	if err := requireID(listID); err != nil {
		return nil, err
	}
	var l List
	if err := h.do(ctx, http.MethodPost, "/lists/share/"+url.PathEscape(listID), nil, &l); err != nil {
		return nil, err
	}
	return &l, nil
}
