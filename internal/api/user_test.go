package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_ReturnsIdentityWithToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/login", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"id":       7,
				"username": "builder",
				"token":    "tok-7",
			},
		})
	})

	user, err := client.Login(context.Background(), LoginRequest{Username: "builder", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, 7, user.ID)
	assert.Equal(t, "tok-7", user.Token)
}

func TestLogin_ShortPasswordNeverSent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request should not be sent")
	})

	_, err := client.Login(context.Background(), LoginRequest{Username: "builder", Password: "abc"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRegister_PasswordMismatch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request should not be sent")
	})

	_, err := client.Register(context.Background(), RegisterRequest{
		Username:        "builder",
		Email:           "b@example.com",
		Password:        "hunter22",
		ConfirmPassword: "hunter23",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "confirmpassword must match password")
}

func TestUpdateUser_FieldsTravelInQuery(t *testing.T) {
	var gotQuery map[string][]string
	var bodyLen int64
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		bodyLen = r.ContentLength
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": map[string]any{"id": 7}})
	})

	_, err := client.UpdateUser(context.Background(), map[string]string{"displayName": "The Builder"})
	require.NoError(t, err)
	assert.Equal(t, []string{"The Builder"}, gotQuery["displayName"])
	assert.LessOrEqual(t, bodyLen, int64(0))
}

func TestChangePassword_QueryEncoded(t *testing.T) {
	var gotQuery map[string][]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		assert.Equal(t, http.MethodPut, r.Method)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	err := client.ChangePassword(context.Background(), "oldpass1", "newpass1")
	require.NoError(t, err)
	assert.Equal(t, []string{"oldpass1"}, gotQuery["oldPassword"])
	assert.Equal(t, []string{"newpass1"}, gotQuery["newPassword"])
}

func TestSendCode_InvalidEmail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request should not be sent")
	})

	err := client.SendCode(context.Background(), "not-an-email")
	assert.ErrorIs(t, err, ErrValidation)
}
