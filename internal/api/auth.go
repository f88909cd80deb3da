package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ainotes/ainotes-go/internal/apierr"
	"github.com/ainotes/ainotes-go/internal/types"
)

// Register creates a new account.
func Register(ctx context.Context, httpClient *http.Client, baseURL string, creds types.Credentials) (*types.MessageResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateUsername(creds.Username); err != nil {
		return nil, err
	}
	if err := types.ValidatePassword(creds.Password); err != nil {
		return nil, err
	}
	req, err := newJSONRequest(ctx, http.MethodPost, fmt.Sprintf("%s/register", baseURL), creds)
	if err != nil {
		return nil, err
	}
	var mr types.MessageResponse
	if err := do(httpClient, req, http.StatusOK, "register", &mr); err != nil {
		return nil, err
	}
	return &mr, nil
}

// Login verifies credentials. The service answers 200 with a message on
// success and 400 with a detail on bad credentials.
func Login(ctx context.Context, httpClient *http.Client, baseURL string, creds types.Credentials) (*types.MessageResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateUsername(creds.Username); err != nil {
		return nil, err
	}
	if err := types.ValidatePassword(creds.Password); err != nil {
		return nil, err
	}
	req, err := newJSONRequest(ctx, http.MethodPost, fmt.Sprintf("%s/login", baseURL), creds)
	if err != nil {
		return nil, err
	}
	var mr types.MessageResponse
	if err := do(httpClient, req, http.StatusOK, "login", &mr); err != nil {
		return nil, err
	}
	return &mr, nil
}

// ChangePassword rotates a password. The endpoint responds HTTP 200 even when
// the old password is wrong and signals the failure via msgType, so that case
// is mapped to a Rejected error here rather than leaking to every caller.
func ChangePassword(ctx context.Context, httpClient *http.Client, baseURL string, req types.ChangePasswordRequest) (*types.ChangePasswordResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateUsername(req.Username); err != nil {
		return nil, err
	}
	if err := types.ValidatePassword(req.OldPassword); err != nil {
		return nil, err
	}
	if err := types.ValidatePassword(req.NewPassword); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodPost, fmt.Sprintf("%s/change_password", baseURL), req)
	if err != nil {
		return nil, err
	}
	var cr types.ChangePasswordResponse
	if err := do(httpClient, httpReq, http.StatusOK, "change password", &cr); err != nil {
		return nil, err
	}
	if cr.MsgType == "error" {
		return nil, apierr.Rejection("change password", http.StatusOK, cr.Msg)
	}
	return &cr, nil
}
