package middleware

const HealthPath = "/healthz"
