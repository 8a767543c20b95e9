package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	apphttp "github.com/ligaspequenas/liga-api/internal/interfaces/http"
)

func buildRateLimitedApp(rl *apphttp.RateLimiter) *fiber.App {
	app := fiber.New()
	app.Post("/login", rl.LoginMiddleware(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func postLogin(t *testing.T, app *fiber.App, email string) *http.Response {
	t.Helper()
	body := `{"email":"` + email + `","password":"x"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Agotada la ráfaga, el mismo email recibe 429 con Retry-After.
func TestRateLimiter_AgotaRafagaPorEmail(t *testing.T) {
	rl := apphttp.NewRateLimiter(apphttp.RateLimiterConfig{
		LoginRate:       rate.Limit(1.0 / 60.0),
		LoginBurst:      3,
		CleanupInterval: time.Minute,
	})
	defer rl.Stop()
	app := buildRateLimitedApp(rl)

	for i := 0; i < 3; i++ {
		resp := postLogin(t, app, "coach@liga.com")
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, "intento %d dentro de la ráfaga", i+1)
	}

	resp := postLogin(t, app, "coach@liga.com")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Retry-After"))
}

// El límite es por email: otro email no se ve afectado.
func TestRateLimiter_EmailsIndependientes(t *testing.T) {
	rl := apphttp.NewRateLimiter(apphttp.RateLimiterConfig{
		LoginRate:       rate.Limit(1.0 / 60.0),
		LoginBurst:      1,
		CleanupInterval: time.Minute,
	})
	defer rl.Stop()
	app := buildRateLimitedApp(rl)

	resp := postLogin(t, app, "uno@liga.com")
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postLogin(t, app, "uno@liga.com")
	resp.Body.Close()
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

	resp = postLogin(t, app, "dos@liga.com")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, rl.Count())
}

// Sin email en el cuerpo la petición pasa al handler (la validación decide).
func TestRateLimiter_SinEmailNoLimita(t *testing.T) {
	rl := apphttp.NewRateLimiter(apphttp.RateLimiterConfig{
		LoginRate:       rate.Limit(1.0 / 60.0),
		LoginBurst:      1,
		CleanupInterval: time.Minute,
	})
	defer rl.Stop()
	app := buildRateLimitedApp(rl)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
	assert.Equal(t, 0, rl.Count())
}
