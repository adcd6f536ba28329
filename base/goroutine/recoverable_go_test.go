package goroutine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/x-xyz/otc-market/base/ctx"
)

func TestRecoverableGo(t *testing.T) {
	res := []string{}

	ev := <-RecoverableGo(
		ctx.Background(),
		func() {
			res = append(res, "run task")
			panic("panic")
		},
		WithAfterEnded(func() {
			res = append(res, "after ended")
		}),
		WithAfterRecovered(func(p interface{}, stack []byte) {
			res = append(res, "after recovered")
			res = append(res, p.(string))
		}),
	)

	assert.Equal(t, []string{
		"run task",
		"after ended",
		"after recovered",
		"panic",
	}, res)
	assert.Equal(t, "panic", ev.Panic)
	assert.NotEmpty(t, ev.Stack)
}

func TestRecoverableGoNoPanic(t *testing.T) {
	done := false
	ev, ok := <-RecoverableGo(ctx.Background(), func() { done = true })
	assert.False(t, ok)
	assert.Nil(t, ev)
	assert.True(t, done)
}
