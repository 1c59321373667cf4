// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package credentials resolves the Semantic Scholar API key from the
// process environment or a plain-text secrets file. The key is resolved
// once at startup and passed by value into the client; nothing else in
// the program consults the environment.
package credentials

import (
	"os"
	"path/filepath"
	"strings"
)

// EnvVar is the environment variable holding the API key. A .env file in
// the working directory is folded into the process environment at startup
// before resolution; already-set variables win.
const EnvVar = "SEMANTIC_SCHOLAR_API_KEY"

// secretFile is the per-key file name inside the secrets directory.
const secretFile = "semantic-scholar-api-key"

// Resolve returns the API key, trying the environment first and then
// secretsDir/semantic-scholar-api-key. An empty result is not an error:
// requests proceed unauthenticated, subject to the server's rate policy.
func Resolve(getenv func(string) string, secretsDir string) string {
	if v := strings.TrimSpace(getenv(EnvVar)); v != "" {
		return v
	}

	data, err := os.ReadFile(filepath.Join(secretsDir, secretFile))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
