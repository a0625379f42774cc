package mongo

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestWithTimeout(t *testing.T) {
	t.Run("adds deadline", func(t *testing.T) {
		ctx, cancel := WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if _, ok := ctx.Deadline(); !ok {
			t.Error("expected a deadline")
		}
	})

	t.Run("keeps earlier parent deadline", func(t *testing.T) {
		parent, pcancel := context.WithTimeout(context.Background(), time.Second)
		defer pcancel()
		want, _ := parent.Deadline()

		ctx, cancel := WithTimeout(parent, time.Hour)
		defer cancel()
		got, _ := ctx.Deadline()
		if !got.Equal(want) {
			t.Errorf("deadline = %v, want %v", got, want)
		}
	})

	t.Run("session context untouched", func(t *testing.T) {
		sessCtx := mongo.NewSessionContext(context.Background(), nil)
		ctx, cancel := WithTimeout(sessCtx, time.Second)
		defer cancel()
		if ctx != sessCtx {
			t.Error("session context must be returned as-is")
		}
		if _, ok := ctx.Deadline(); ok {
			t.Error("session context must not gain a deadline")
		}
	})
}
