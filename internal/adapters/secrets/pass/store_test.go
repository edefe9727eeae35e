package pass

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/digital-prison-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "digital-prison/gemini_api_key"

func fakeRunner(t *testing.T, wantArgs []string, wantStdin string, stdout, stderr string, err error) runner {
	t.Helper()

	return func(_ context.Context, stdin string, args ...string) (string, string, error) {
		assert.Equal(t, wantArgs, args)
		assert.Equal(t, wantStdin, stdin)
		return stdout, stderr, err
	}
}

func TestStorePutInsertsMultilineEntry(t *testing.T) {
	t.Parallel()

	store := &Store{run: fakeRunner(t, []string{"insert", "--multiline", "--force", testKey}, "AIza-secret\n", "", "", nil)}

	require.NoError(t, store.Put(context.Background(), testKey, "AIza-secret"))
}

func TestStoreGetReturnsFirstLineOnly(t *testing.T) {
	t.Parallel()

	store := &Store{run: fakeRunner(t, []string{"show", testKey}, "", "AIza-secret\r\nurl: https://aistudio.google.com\n", "", nil)}

	value, err := store.Get(context.Background(), testKey)
	require.NoError(t, err)
	assert.Equal(t, "AIza-secret", value)
}

func TestStoreGetMapsMissingEntryToSecretNotFound(t *testing.T) {
	t.Parallel()

	store := &Store{run: fakeRunner(t, []string{"show", testKey}, "", "", "Error: "+testKey+" is not in the password store.", errors.New("exit status 1"))}

	_, err := store.Get(context.Background(), testKey)
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreGetReportsCommandFailure(t *testing.T) {
	t.Parallel()

	store := &Store{run: fakeRunner(t, []string{"show", testKey}, "", "", "gpg: decryption failed: No secret key", errors.New("exit status 2"))}

	_, err := store.Get(context.Background(), testKey)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrSecretNotFound)
	assert.ErrorContains(t, err, "pass show")
	assert.ErrorContains(t, err, "decryption failed")
}

func TestStoreGetPropagatesUnavailable(t *testing.T) {
	t.Parallel()

	store := &Store{run: fakeRunner(t, []string{"show", testKey}, "", "", "", ErrUnavailable)}

	_, err := store.Get(context.Background(), testKey)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestStoreDeleteIgnoresMissingEntry(t *testing.T) {
	t.Parallel()

	store := &Store{run: fakeRunner(t, []string{"rm", "--force", testKey}, "", "", "Error: "+testKey+" is not in the password store.", errors.New("exit status 1"))}

	require.NoError(t, store.Delete(context.Background(), testKey))
}

func TestStoreDeleteReportsCommandFailure(t *testing.T) {
	t.Parallel()

	store := &Store{run: fakeRunner(t, []string{"rm", "--force", testKey}, "", "", "", errors.New("exit status 1"))}

	err := store.Delete(context.Background(), testKey)
	assert.ErrorContains(t, err, "pass rm")
}

func TestStoreCanceledContextSkipsCommand(t *testing.T) {
	t.Parallel()

	store := &Store{run: func(context.Context, string, ...string) (string, string, error) {
		t.Fatal("pass must not run with a canceled context")
		return "", "", nil
	}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Get(ctx, testKey)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, store.Put(ctx, testKey, "x"), context.Canceled)
	require.ErrorIs(t, store.Delete(ctx, testKey), context.Canceled)
}
