package provider

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	taerrors "github.com/guicastle/typeahead/internal/errors"
)

var fruit = []string{"Apple", "Banana", "Blueberry", "Cherry", "Pineapple"}

func TestStatic_SubstringQuery_ReturnsMatches(t *testing.T) {
	// Given: a static provider over a fruit list
	p := NewStatic(fruit)

	// When: a substring query runs
	items, err := p.Search(context.Background(), "apple")

	// Then: matching is case-insensitive and preserves input order
	require.NoError(t, err)
	assert.Equal(t, []string{"Apple", "Pineapple"}, items)
}

func TestStatic_EmptyQuery_ReturnsEverything(t *testing.T) {
	p := NewStatic(fruit)

	items, err := p.Search(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, fruit, items)
}

func TestStatic_NoMatch_ReturnsEmptyNotNil(t *testing.T) {
	p := NewStatic(fruit)

	items, err := p.Search(context.Background(), "zzz")

	require.NoError(t, err)
	require.NotNil(t, items)
	assert.Empty(t, items)
}

func TestStatic_Delay_HonorsContextCancellation(t *testing.T) {
	// Given: a provider with artificial latency
	p := NewStatic(fruit).WithDelay(time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	// When: the context expires before the delay elapses
	start := time.Now()
	_, err := p.Search(ctx, "a")

	// Then: the lookup aborts promptly with the context error
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestStatic_SearchAfterClose_Fails(t *testing.T) {
	// Given: a closed provider
	p := NewStatic(fruit)
	require.NoError(t, p.Close())

	// When: a lookup is attempted
	_, err := p.Search(context.Background(), "a")

	// Then: it fails with the provider-closed code
	assert.Equal(t, taerrors.ErrCodeProviderClosed, taerrors.GetCode(err))
}

func TestStatic_Close_Twice_Safe(t *testing.T) {
	p := NewStatic(fruit)
	require.NoError(t, p.Close())
	assert.NoError(t, p.Close())
}

func TestItemsFromReader_SkipsBlanksAndComments(t *testing.T) {
	input := "# header\n\napple\n  banana  \n# trailing\ncherry\n"

	items, err := ItemsFromReader(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "banana", "cherry"}, items)
}

func TestLoadItems_ReadsDatasetFile(t *testing.T) {
	// Given: a dataset file on disk
	path := filepath.Join(t.TempDir(), "items.txt")
	require.NoError(t, os.WriteFile(path, []byte("apple\nbanana\n"), 0o644))

	// When/Then: it loads line by line
	items, err := LoadItems(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "banana"}, items)
}

func TestLoadItems_MissingFile_Fails(t *testing.T) {
	_, err := LoadItems(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}
