package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wealthdesk/wealthdesk/internal/storage"
)

func TestApplication_Shutdown(t *testing.T) {
	t.Run("should flush pending snapshot writes before closing the store", func(t *testing.T) {
		// given
		path := filepath.Join(t.TempDir(), "wealthdesk.db")
		store, err := storage.Open(path)
		require.NoError(t, err)
		writer := storage.NewWriter(store)
		application := &Application{store: store, writer: writer}
		writer.Enqueue("budget-data", `{"income":[{"id":1}]}`)

		// when
		application.Shutdown()

		// then: the snapshot survived to disk
		reopened, err := storage.Open(path)
		require.NoError(t, err)
		defer reopened.Close()
		value, err := reopened.Get(context.Background(), "budget-data")
		require.NoError(t, err)
		assert.Equal(t, `{"income":[{"id":1}]}`, value)
	})
}
