package mw

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

// ResponseCache caches successful GET responses in memory. Ranking,
// pricing and scheduling are pure POST computations and pass through
// untouched; the cache only shields read endpoints such as device and
// job listings.
type ResponseCache struct {
	store *cache.Cache
	ttl   time.Duration
}

// NewResponseCache creates a cache whose entries expire after ttl.
func NewResponseCache(ttl time.Duration) *ResponseCache {
	return &ResponseCache{
		store: cache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

type cachedResponse struct {
	status  int
	headers http.Header
	body    []byte
}

type teeWriter struct {
	gin.ResponseWriter
	buf *bytes.Buffer
}

func (w teeWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w teeWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Handler returns the gin middleware backed by this cache.
func (rc *ResponseCache) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.RequestURI
		if hit, found := rc.store.Get(key); found {
			resp := hit.(cachedResponse)
			for k, v := range resp.headers {
				c.Writer.Header()[k] = v
			}
			c.Writer.Header().Set("X-Cache", "HIT")
			c.Writer.WriteHeader(resp.status)
			c.Writer.Write(resp.body)
			c.Abort()
			return
		}

		tw := teeWriter{ResponseWriter: c.Writer, buf: bytes.NewBuffer(nil)}
		c.Writer = tw

		c.Next()

		if tw.Status() >= 200 && tw.Status() < 300 {
			rc.store.Set(key, cachedResponse{
				status:  tw.Status(),
				headers: tw.Header().Clone(),
				body:    tw.buf.Bytes(),
			}, rc.ttl)
		}
	}
}
