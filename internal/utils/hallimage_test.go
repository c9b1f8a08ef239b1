package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unihall/hall-allotment/internal/model"
)

func TestHallImagePrecedence(t *testing.T) {
	h := &model.Hall{
		ShortCode:     "ASH",
		LocalImage:    "/static/ash-override.jpg",
		ImageURL:      "https://cdn.example.com/ash.jpg",
		FallbackImage: "/static/hall-generic.jpg",
	}
	assert.Equal(t, "/static/ash-override.jpg", HallImage(h))

	h.LocalImage = ""
	assert.Equal(t, "/halls/ASH.jpg", HallImage(h))

	h.ShortCode = ""
	assert.Equal(t, "https://cdn.example.com/ash.jpg", HallImage(h))

	h.ImageURL = ""
	assert.Equal(t, "/static/hall-generic.jpg", HallImage(h))

	assert.Equal(t, "", HallImage(nil))
}
