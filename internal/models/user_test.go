package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_JSONNeverExposesPasswordHash(t *testing.T) {
	u := User{ID: "u-1", Name: "Ann", Email: "a@x.com", PasswordHash: "$2a$10$secret"}

	raw, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")
	assert.NotContains(t, string(raw), "password")

	pub := u.Public()
	assert.Equal(t, PublicUser{ID: "u-1", Name: "Ann", Email: "a@x.com"}, pub)
}

func TestItem_JSONShape(t *testing.T) {
	raw, err := json.Marshal(Item{ID: "i-1", UserID: "u-1", Title: "Buy milk"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"i-1","title":"Buy milk","description":""}`, string(raw))
}
