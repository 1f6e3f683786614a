package middleware

import (
	"bytes"

	"checkout-service/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const IdempotencyKeyHeader = "Idempotency-Key"

const replayHeader = "Idempotent-Replay"

// IdempotentReplay short-circuits a mutating call whose idempotency key
// has been seen before: the previously captured response is written back
// verbatim and the handler chain never runs, so nothing is re-executed
// or re-validated. Calls without a key execute normally. The replayed
// body is byte-identical to the original.
func IdempotentReplay(store shared.ReplayStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		if cached, ok := store.Get(c.Request.Context(), key); ok {
			c.Header(replayHeader, "true")
			c.Data(cached.Status, cached.ContentType, cached.Body)
			c.Abort()
			return
		}

		writer := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = writer

		c.Next()

		store.Put(c.Request.Context(), key, &shared.CapturedResponse{
			Status:      writer.Status(),
			ContentType: writer.Header().Get("Content-Type"),
			Body:        writer.body.Bytes(),
		})
	}
}

type captureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
