package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

func GetFiberListenAddress() string {
	return fmt.Sprintf("%s:%s", GetFiberHttpHost(), GetFiberHttpPort())
}

func GetFiberConfig() fiber.Config {
	return fiber.Config{
		DisableStartupMessage: false,
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		Prefork:               false,
		ServerHeader:          "MUSABAQA",
		AppName:               GetAppName(),
		ReadTimeout:           GetFiberReadTimeout(),
		CaseSensitive:         true,
		BodyLimit:             GetFiberBodyLimit(),
	}
}

func GetAppName() string {
	v := os.Getenv("APP_NAME")
	if v == "" {
		return "MUSABAQA"
	}

	return v
}

func GetFiberHttpHost() string {
	env := os.Getenv("HTTP_HOST")
	if env != "" {
		return env
	}
	return "0.0.0.0"
}

func GetFiberHttpPort() string {
	env := os.Getenv("HTTP_PORT")
	if env != "" {
		return env
	}
	return "8000"
}

func GetCorsAllowOrigins() string {
	env := os.Getenv("CORS_ALLOW_ORIGINS")
	if env != "" {
		return env
	}
	return "*"
}

// GetUseCaseTimeout reads USECASE_TIMEOUT as a Go duration, defaulting to 10s.
func GetUseCaseTimeout() time.Duration {
	env := os.Getenv("USECASE_TIMEOUT")
	if env == "" {
		return 10 * time.Second
	}
	d, err := time.ParseDuration(env)
	if err != nil || d <= 0 {
		GetLogrusInstance().Warnf("invalid USECASE_TIMEOUT %q, using 10s", env)
		return 10 * time.Second
	}
	return d
}

// GetFiberReadTimeout reads HTTP_READ_TIMEOUT as a Go duration, defaulting to 60s.
func GetFiberReadTimeout() time.Duration {
	env := os.Getenv("HTTP_READ_TIMEOUT")
	if env == "" {
		return 60 * time.Second
	}
	d, err := time.ParseDuration(env)
	if err != nil || d <= 0 {
		GetLogrusInstance().Warnf("invalid HTTP_READ_TIMEOUT %q, using 60s", env)
		return 60 * time.Second
	}
	return d
}

// GetFiberBodyLimit reads HTTP_BODY_LIMIT_MB, the largest request body (and so
// the largest CSV upload) accepted, defaulting to 10 MB.
func GetFiberBodyLimit() int {
	const defaultMB = 10
	env := os.Getenv("HTTP_BODY_LIMIT_MB")
	if env == "" {
		return defaultMB * 1024 * 1024
	}
	mb, err := strconv.Atoi(env)
	if err != nil || mb <= 0 {
		GetLogrusInstance().Warnf("invalid HTTP_BODY_LIMIT_MB %q, using %d", env, defaultMB)
		return defaultMB * 1024 * 1024
	}
	return mb * 1024 * 1024
}
