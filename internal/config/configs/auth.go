package configs

// Auth configures bearer token verification. Tokens are HS256 JWTs whose
// subject is the acting user id.
type Auth struct {
	JWTSecret string `env:"JWT_SECRET,notEmpty"`
}
