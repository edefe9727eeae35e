package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitLineGrowsWithElapsedTime(t *testing.T) {
	assert.Equal(t, "* Transmitting...", waitLine("*", "Transmitting...", time.Second))
	assert.Equal(t, "* Transmitting... 4s", waitLine("*", "Transmitting...", 4500*time.Millisecond))

	assert.Equal(t, "* Connecting... 12s", waitLine("*", "Connecting...", 12*time.Second))
}

func TestWaitNoticeAppearsForSlowRequests(t *testing.T) {
	assert.Empty(t, waitNotice(9*time.Second))
	assert.Contains(t, waitNotice(wakeNoticeAfter), wakeNotice)
}

func TestRunRequestSpinnerReturnsRequestError(t *testing.T) {
	want := errors.New("core offline")

	var out bytes.Buffer
	err := runRequestSpinner(context.Background(), &out, "Transmitting...", func(context.Context) error {
		return want
	})
	require.ErrorIs(t, err, want)
}
