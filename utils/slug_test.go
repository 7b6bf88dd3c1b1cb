package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Khách Sạn Biển Xanh", "khach-san-bien-xanh"},
		{"  Đà Lạt -- View Đồi  ", "da-lat-view-doi"},
		{"Vista 101", "vista-101"},
		{"!!!", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in))
	}
}

func TestUniqueSlugNoCollision(t *testing.T) {
	slug, err := UniqueSlug("Khách Sạn Biển Xanh", func(string) (bool, error) {
		return false, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "khach-san-bien-xanh", slug)
}

func TestUniqueSlugWithCollisions(t *testing.T) {
	taken := map[string]bool{
		"khach-san-bien-xanh":   true,
		"khach-san-bien-xanh-2": true,
	}

	slug, err := UniqueSlug("Khách Sạn Biển Xanh", func(s string) (bool, error) {
		return taken[s], nil
	})
	require.NoError(t, err)
	assert.Equal(t, "khach-san-bien-xanh-3", slug)
}

func TestUniqueSlugEmptyName(t *testing.T) {
	slug, err := UniqueSlug("!!!", func(string) (bool, error) {
		return false, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "listing", slug)
}
