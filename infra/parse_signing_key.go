package infra

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"log"
	"strings"
)

// MustParseSigningKey decodes the PKCS#1 PEM private key that signs session
// tokens. The key is a process precondition: there is no degraded mode to run
// in without it, so any parse failure exits.
func MustParseSigningKey(pemKey string) *rsa.PrivateKey {
	// docker-compose escapes the newlines of multi-line env values
	pemKey = strings.ReplaceAll(pemKey, "\\n", "\n")

	block, _ := pem.Decode([]byte(pemKey))
	if block == nil || block.Type != "RSA PRIVATE KEY" {
		log.Fatal("AUTHENTICATION_JWT_SIGNING_KEY is not a PEM encoded RSA private key")
	}

	signingKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		log.Fatalf("failed to parse AUTHENTICATION_JWT_SIGNING_KEY: %v", err)
	}
	return signingKey
}
