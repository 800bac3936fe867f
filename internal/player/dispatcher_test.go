package player_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foyerhq/foyer/internal/player"
)

func TestSerialDispatcher_RunsInSubmissionOrder(t *testing.T) {
	d := player.NewSerialDispatcher()

	var got []int
	for i := 0; i < 100; i++ {
		i := i
		d.Dispatch(func() { got = append(got, i) })
	}
	d.Close()

	assert.Len(t, got, 100)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestSerialDispatcher_DispatchAfterCloseIsDropped(t *testing.T) {
	d := player.NewSerialDispatcher()
	d.Close()

	ran := false
	d.Dispatch(func() { ran = true })
	d.Close()

	assert.False(t, ran)
}
