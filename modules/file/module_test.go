package file

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/declargo/internal/registry"
	"github.com/vk/declargo/internal/resource"
)

func TestBuild(t *testing.T) {
	t.Run("title doubles as path", func(t *testing.T) {
		res, err := resource.New("file", "/etc/motd")
		require.NoError(t, err)

		handle, err := Build(context.Background(), res)
		require.NoError(t, err)

		h, ok := handle.(*Handle)
		require.True(t, ok)
		assert.Equal(t, "/etc/motd", h.Path)
		assert.Equal(t, "present", h.Ensure)
	})

	t.Run("parameters decode into the handle", func(t *testing.T) {
		res, err := resource.New("file", "/etc/motd",
			resource.Param{Name: "ensure", Value: "absent"},
			resource.Param{Name: "mode", Value: "0600"},
			resource.Param{Name: "owner", Value: "root"},
			resource.Param{Name: "content", Value: "hello"},
		)
		require.NoError(t, err)

		handle, err := Build(context.Background(), res)
		require.NoError(t, err)

		h := handle.(*Handle)
		assert.Equal(t, "absent", h.Ensure)
		assert.Equal(t, "0600", h.Mode)
		assert.Equal(t, "root", h.Owner)
		assert.Equal(t, "hello", h.Content)
	})

	t.Run("explicit path overrides the title", func(t *testing.T) {
		res, err := resource.New("file", "motd",
			resource.Param{Name: "path", Value: "/etc/motd"},
		)
		require.NoError(t, err)

		handle, err := Build(context.Background(), res)
		require.NoError(t, err)
		assert.Equal(t, "/etc/motd", handle.(*Handle).Path)
	})

	t.Run("unknown parameter fails", func(t *testing.T) {
		res, err := resource.New("file", "/etc/motd",
			resource.Param{Name: "bogus", Value: "x"},
		)
		require.NoError(t, err)

		_, err = Build(context.Background(), res)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bogus")
	})
}

func TestRegister(t *testing.T) {
	r := registry.New()
	(&Module{}).Register(r)

	_, ok := r.Lookup("file")
	assert.True(t, ok)
}
