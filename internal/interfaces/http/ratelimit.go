package http

import (
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ligaspequenas/liga-api/internal/application/dto"
	"golang.org/x/time/rate"
)

// RateLimiterConfig configuración del límite de intentos de login.
type RateLimiterConfig struct {
	LoginRate       rate.Limit    // intentos/seg por email
	LoginBurst      int           // ráfaga permitida
	CleanupInterval time.Duration // intervalo de limpieza de entradas viejas
}

// DefaultRateLimiterConfig devuelve la configuración por defecto:
// 5 intentos por minuto por email.
func DefaultRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		LoginRate:       rate.Limit(5.0 / 60.0),
		LoginBurst:      5,
		CleanupInterval: 5 * time.Minute,
	}
}

type emailLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter limita los intentos de login por email para frenar fuerza bruta
// de credenciales. Las entradas sin uso se limpian en segundo plano.
type RateLimiter struct {
	config RateLimiterConfig

	mu       sync.Mutex
	limiters map[string]*emailLimiter

	stopCh chan struct{}
}

// NewRateLimiter crea el limitador y arranca la limpieza en segundo plano.
func NewRateLimiter(config RateLimiterConfig) *RateLimiter {
	rl := &RateLimiter{
		config:   config,
		limiters: make(map[string]*emailLimiter),
		stopCh:   make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

// Stop detiene la goroutine de limpieza.
func (rl *RateLimiter) Stop() {
	close(rl.stopCh)
}

// LoginMiddleware limita por el email del cuerpo de la petición. Si el cuerpo
// no trae email la petición pasa; el handler la rechazará por validación.
func (rl *RateLimiter) LoginMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.LoginRequest
		if err := c.BodyParser(&in); err != nil || in.Email == "" {
			return c.Next()
		}
		email := strings.ToLower(strings.TrimSpace(in.Email))
		if !rl.getOrCreate(email).Allow() {
			retryAfterSec := int(math.Ceil(1.0 / float64(rl.config.LoginRate)))
			if retryAfterSec < 1 {
				retryAfterSec = 1
			}
			c.Set("Retry-After", strconv.Itoa(retryAfterSec))
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "RATE_LIMITED", Message: "demasiados intentos, espere antes de reintentar"})
		}
		return c.Next()
	}
}

// Count devuelve el número de entradas administradas. Para tests.
func (rl *RateLimiter) Count() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}

func (rl *RateLimiter) getOrCreate(email string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if el, ok := rl.limiters[email]; ok {
		el.lastAccess = time.Now()
		return el.limiter
	}
	limiter := rate.NewLimiter(rl.config.LoginRate, rl.config.LoginBurst)
	rl.limiters[email] = &emailLimiter{limiter: limiter, lastAccess: time.Now()}
	return limiter
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.config.CleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stopCh:
			return
		}
	}
}

// cleanup elimina entradas sin acceso por más de dos intervalos.
func (rl *RateLimiter) cleanup() {
	ttl := rl.config.CleanupInterval * 2
	now := time.Now()
	rl.mu.Lock()
	for email, el := range rl.limiters {
		if now.Sub(el.lastAccess) > ttl {
			delete(rl.limiters, email)
		}
	}
	rl.mu.Unlock()
}
