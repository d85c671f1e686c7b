package filestorage

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestIsPictureContentType(t *testing.T) {
	require.True(t, IsPictureContentType("image/png"))
	require.True(t, IsPictureContentType("IMAGE/JPEG; charset=binary"))
	require.False(t, IsPictureContentType("application/pdf"))
	require.False(t, IsPictureContentType(""))
}

func TestWithoutClient(t *testing.T) {
	storage := NewInstance(nil, "bucket")
	_, err := storage.UploadProfilePicture(context.Background(), 1, strings.NewReader("x"), 1, "image/png")
	require.True(t, errors.Is(err, ErrStorageUnavailable))
	_, _, err = storage.GetFile(context.Background(), "profile-pictures/1/a.png")
	require.True(t, errors.Is(err, ErrStorageUnavailable))
	require.True(t, errors.Is(storage.DeleteFile(context.Background(), "x"), ErrStorageUnavailable))
}
