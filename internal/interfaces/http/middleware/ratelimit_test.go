package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter(t *testing.T) {
	t.Run("allows requests within limit", func(t *testing.T) {
		limiter := NewRateLimiter(5, time.Minute)
		for i := 0; i < 5; i++ {
			assert.True(t, limiter.Allow("10.0.0.1"), "request %d should pass", i+1)
		}
	})

	t.Run("blocks once the limit is spent", func(t *testing.T) {
		limiter := NewRateLimiter(3, time.Minute)
		for i := 0; i < 3; i++ {
			require.True(t, limiter.Allow("10.0.0.2"))
		}
		assert.False(t, limiter.Allow("10.0.0.2"))
	})

	t.Run("keys have independent budgets", func(t *testing.T) {
		limiter := NewRateLimiter(2, time.Minute)

		require.True(t, limiter.Allow("10.0.0.3"))
		require.True(t, limiter.Allow("10.0.0.3"))
		assert.False(t, limiter.Allow("10.0.0.3"))

		assert.True(t, limiter.Allow("10.0.0.4"))
	})

	t.Run("window reset refills the budget", func(t *testing.T) {
		limiter := NewRateLimiter(2, 50*time.Millisecond)

		require.True(t, limiter.Allow("10.0.0.5"))
		require.True(t, limiter.Allow("10.0.0.5"))
		require.False(t, limiter.Allow("10.0.0.5"))

		time.Sleep(60 * time.Millisecond)
		assert.True(t, limiter.Allow("10.0.0.5"))
	})

	t.Run("remaining tracks spent tokens", func(t *testing.T) {
		limiter := NewRateLimiter(5, time.Minute)

		assert.Equal(t, 5, limiter.Remaining("10.0.0.6"))
		limiter.Allow("10.0.0.6")
		limiter.Allow("10.0.0.6")
		assert.Equal(t, 3, limiter.Remaining("10.0.0.6"))
	})

	t.Run("concurrent callers never exceed the limit", func(t *testing.T) {
		limiter := NewRateLimiter(100, time.Minute)

		var wg sync.WaitGroup
		var mu sync.Mutex
		allowed := 0

		for i := 0; i < 150; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if limiter.Allow("shared") {
					mu.Lock()
					allowed++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 100, allowed)
	})
}

func rateLimitedRouter(mw gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(mw)
	router.POST("/api/v1/auth/login", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	router.GET("/api/v1/posts", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return router
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes requests under the limit with headers", func(t *testing.T) {
		router := rateLimitedRouter(RateLimit(NewRateLimiter(10, time.Minute)))

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/posts", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "10", w.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "9", w.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("blocks with 429 once exhausted", func(t *testing.T) {
		router := rateLimitedRouter(RateLimit(NewRateLimiter(2, time.Minute)))

		var last *httptest.ResponseRecorder
		for i := 0; i < 3; i++ {
			last = httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/api/v1/posts", nil)
			router.ServeHTTP(last, req)
		}

		assert.Equal(t, http.StatusTooManyRequests, last.Code)
		assert.Contains(t, last.Body.String(), "RATE_LIMIT_EXCEEDED")
	})

	t.Run("scopes limits per authenticated user", func(t *testing.T) {
		limiter := NewRateLimiter(2, time.Minute)
		router := gin.New()
		// Simulates the JWT middleware populating the user ID
		router.Use(func(c *gin.Context) {
			if user := c.GetHeader("X-Test-User"); user != "" {
				c.Set(JWTUserIDKey, user)
			}
			c.Next()
		})
		router.Use(RateLimit(limiter))
		router.GET("/api/v1/posts", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true})
		})

		send := func(user string) int {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/api/v1/posts", nil)
			if user != "" {
				req.Header.Set("X-Test-User", user)
			}
			router.ServeHTTP(w, req)
			return w.Code
		}

		// First user exhausts their budget
		require.Equal(t, http.StatusOK, send("student-1"))
		require.Equal(t, http.StatusOK, send("student-1"))
		assert.Equal(t, http.StatusTooManyRequests, send("student-1"))

		// Same IP, different user still has a fresh budget
		assert.Equal(t, http.StatusOK, send("student-2"))
	})
}

func TestAuthRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("allows attempts within the limit", func(t *testing.T) {
		router := rateLimitedRouter(AuthRateLimit(NewRateLimiter(5, time.Minute)))

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/auth/login", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "4", w.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("blocks with Retry-After once exhausted", func(t *testing.T) {
		router := rateLimitedRouter(AuthRateLimit(NewRateLimiter(1, time.Minute)))

		first := httptest.NewRecorder()
		router.ServeHTTP(first, httptest.NewRequest("POST", "/api/v1/auth/login", nil))
		require.Equal(t, http.StatusOK, first.Code)

		second := httptest.NewRecorder()
		router.ServeHTTP(second, httptest.NewRequest("POST", "/api/v1/auth/login", nil))

		assert.Equal(t, http.StatusTooManyRequests, second.Code)
		assert.Equal(t, "60", second.Header().Get("Retry-After"))
		assert.Contains(t, second.Body.String(), "AUTH_RATE_LIMIT_EXCEEDED")
		assert.Contains(t, second.Body.String(), "Too many authentication attempts")
	})

	t.Run("auth budget is independent of the general limiter key", func(t *testing.T) {
		// One limiter serving both middlewares still keeps separate
		// buckets because auth keys carry a prefix
		limiter := NewRateLimiter(1, time.Minute)
		router := gin.New()
		router.Use(func(c *gin.Context) {
			if c.Request.URL.Path == "/api/v1/auth/login" {
				AuthRateLimit(limiter)(c)
				return
			}
			RateLimit(limiter)(c)
		})
		router.POST("/api/v1/auth/login", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true})
		})
		router.GET("/api/v1/posts", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true})
		})

		login := httptest.NewRecorder()
		router.ServeHTTP(login, httptest.NewRequest("POST", "/api/v1/auth/login", nil))
		require.Equal(t, http.StatusOK, login.Code)

		// The general budget for this IP is untouched
		posts := httptest.NewRecorder()
		router.ServeHTTP(posts, httptest.NewRequest("GET", "/api/v1/posts", nil))
		assert.Equal(t, http.StatusOK, posts.Code)
	})

	t.Run("attempts from different IPs are isolated", func(t *testing.T) {
		router := rateLimitedRouter(AuthRateLimit(NewRateLimiter(1, time.Minute)))

		first := httptest.NewRecorder()
		reqA := httptest.NewRequest("POST", "/api/v1/auth/login", nil)
		reqA.RemoteAddr = "203.0.113.10:1234"
		router.ServeHTTP(first, reqA)
		require.Equal(t, http.StatusOK, first.Code)

		blocked := httptest.NewRecorder()
		reqA2 := httptest.NewRequest("POST", "/api/v1/auth/login", nil)
		reqA2.RemoteAddr = "203.0.113.10:5678"
		router.ServeHTTP(blocked, reqA2)
		require.Equal(t, http.StatusTooManyRequests, blocked.Code)

		fresh := httptest.NewRecorder()
		reqB := httptest.NewRequest("POST", "/api/v1/auth/login", nil)
		reqB.RemoteAddr = "203.0.113.20:1234"
		router.ServeHTTP(fresh, reqB)
		assert.Equal(t, http.StatusOK, fresh.Code)
	})
}
